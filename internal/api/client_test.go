package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path      string
	query     url.Values
	requestID string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{path: r.URL.Path, query: r.URL.Query(), requestID: r.Header.Get("X-Request-ID")})
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestServer(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()
	fake := &fakeAPI{}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			fake.record(req)
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/operadoras", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, `{"data":[{"cnpj":"12345678000195","razao_social":"Saude SA","uf":"SP","modalidade":"Medicina de Grupo"},{"cnpj":419478,"razao_social":null,"uf":"RJ","modalidade":null}],"total":23,"page":2,"limit":10}`)
		})
		r.Get("/operadoras/{cnpj}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "cnpj") != "12345678000195" {
				writeJSON(w, http.StatusNotFound, `{"detail":"Operadora com CNPJ 999 não encontrada."}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"cnpj":"12345678000195","razao_social":"Saude SA","uf":"SP","modalidade":"Medicina de Grupo"}`)
		})
		r.Get("/operadoras/{cnpj}/despesas", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "cnpj") == "empty" {
				writeJSON(w, http.StatusOK, `null`)
				return
			}
			writeJSON(w, http.StatusOK, `[{"data_referencia":"2024-03-05 00:00:00","valor_despesa":1234.5},{"data_referencia":"2023-12-01","valor_despesa":10}]`)
		})
		r.Get("/estatisticas", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, `{"total_geral":1000.25,"media_lancamento":50.5,"top_5_operadoras":[{"razao_social":"Saude SA","total":700}],"distribuicao_uf":[{"uf":"SP","total":700},{"uf":"RJ","total":300.25}]}`)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	log, _ := test.NewNullLogger()
	client, err := NewClient(server.URL+"/api/", WithHTTPClient(server.Client()), WithLogger(log))
	require.NoError(t, err)
	return client, fake
}

func TestListOperadorasSendsQuery(t *testing.T) {
	client, fake := newTestServer(t)

	page, err := client.ListOperadoras(context.Background(), ListParams{Page: 2, Limit: 10, Search: "saúde & cia"})
	require.NoError(t, err)

	req := fake.last()
	assert.Equal(t, "/api/operadoras", req.path)
	assert.Equal(t, "2", req.query.Get("page"))
	assert.Equal(t, "10", req.query.Get("limit"))
	assert.Equal(t, "saúde & cia", req.query.Get("search"))
	assert.NotEmpty(t, req.requestID)

	assert.Equal(t, 23, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Data, 2)
	assert.Equal(t, CNPJ("12345678000195"), page.Data[0].CNPJ)
	assert.Equal(t, CNPJ("419478"), page.Data[1].CNPJ)
	assert.Empty(t, page.Data[1].RazaoSocial)
}

func TestListOperadorasDefaultsPaging(t *testing.T) {
	client, fake := newTestServer(t)

	_, err := client.ListOperadoras(context.Background(), ListParams{})
	require.NoError(t, err)

	req := fake.last()
	assert.Equal(t, "1", req.query.Get("page"))
	assert.Equal(t, "10", req.query.Get("limit"))
	assert.True(t, req.query.Has("search"))
}

func TestGetOperadora(t *testing.T) {
	client, _ := newTestServer(t)

	op, err := client.GetOperadora(context.Background(), "12345678000195")
	require.NoError(t, err)
	assert.Equal(t, "Saude SA", op.RazaoSocial)

	_, err = client.GetOperadora(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Operadora com CNPJ 999 não encontrada.", se.Detail)
}

func TestDespesas(t *testing.T) {
	client, fake := newTestServer(t)

	despesas, err := client.Despesas(context.Background(), "12345678000195")
	require.NoError(t, err)
	assert.Equal(t, "/api/operadoras/12345678000195/despesas", fake.last().path)
	require.Len(t, despesas, 2)
	assert.Equal(t, "2024-03-05 00:00:00", despesas[0].DataReferencia)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(despesas[0].ValorDespesa))

	despesas, err = client.Despesas(context.Background(), "empty")
	require.NoError(t, err)
	assert.NotNil(t, despesas)
	assert.Empty(t, despesas)
}

func TestEstatisticas(t *testing.T) {
	client, _ := newTestServer(t)

	stats, err := client.Estatisticas(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1000.25").Equal(stats.TotalGeral))
	assert.True(t, decimal.RequireFromString("50.5").Equal(stats.MediaLancamento))
	require.Len(t, stats.TopOperadoras, 1)
	require.Len(t, stats.DistribuicaoUF, 2)
	assert.Equal(t, "RJ", stats.DistribuicaoUF[1].UF)
}

func TestClientTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		server.Close()
	})

	log, _ := test.NewNullLogger()
	client, err := NewClient(server.URL, WithTimeout(50*time.Millisecond), WithLogger(log))
	require.NoError(t, err)

	_, err = client.Estatisticas(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient("/api")
	require.Error(t, err)
}

func TestCNPJUnmarshal(t *testing.T) {
	var ops []Operadora
	require.NoError(t, json.Unmarshal([]byte(`[{"cnpj":"001"},{"cnpj":12345678000195},{"cnpj":null}]`), &ops))
	assert.Equal(t, CNPJ("001"), ops[0].CNPJ)
	assert.Equal(t, CNPJ("12345678000195"), ops[1].CNPJ)
	assert.Equal(t, CNPJ(""), ops[2].CNPJ)

	var bad Operadora
	assert.Error(t, json.Unmarshal([]byte(`{"cnpj":true}`), &bad))
}
