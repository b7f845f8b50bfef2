package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultLimit is the page size the dashboard always requests
const DefaultLimit = 10

// CNPJ identifies an operadora. The API may send it as a JSON string or number.
type CNPJ string

// UnmarshalJSON accepts both "123" and 123
func (c *CNPJ) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CNPJ(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cnpj: %w", err)
	}
	*c = CNPJ(n.String())
	return nil
}

func (c CNPJ) String() string { return string(c) }

// Operadora is a health plan operator record
type Operadora struct {
	CNPJ        CNPJ   `json:"cnpj"`
	RazaoSocial string `json:"razao_social"`
	UF          string `json:"uf"`
	Modalidade  string `json:"modalidade"`
}

// OperadoraPage is one page of the operadoras listing
type OperadoraPage struct {
	Data  []Operadora `json:"data"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// ListParams are the query parameters of the listing
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Despesa is one expense entry of an operadora
type Despesa struct {
	DataReferencia string          `json:"data_referencia"`
	ValorDespesa   decimal.Decimal `json:"valor_despesa"`
}

// TopOperadora is an entry of the top 5 ranking
type TopOperadora struct {
	RazaoSocial string          `json:"razao_social"`
	Total       decimal.Decimal `json:"total"`
}

// UFTotal is the expense total of one UF
type UFTotal struct {
	UF    string          `json:"uf"`
	Total decimal.Decimal `json:"total"`
}

// Estatisticas is the aggregate statistics summary
type Estatisticas struct {
	TotalGeral      decimal.Decimal `json:"total_geral"`
	MediaLancamento decimal.Decimal `json:"media_lancamento"`
	TopOperadoras   []TopOperadora  `json:"top_5_operadoras"`
	DistribuicaoUF  []UFTotal       `json:"distribuicao_uf"`
}
