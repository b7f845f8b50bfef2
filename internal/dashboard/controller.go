// Package dashboard holds the UI-agnostic state of the operadoras dashboard
// and the actions that change it. Views subscribe with OnChange and render
// the snapshots they receive.
package dashboard

import (
	"context"
	"sync"

	"github.com/jdlms/operadoras-dashboard/internal/api"

	"github.com/sirupsen/logrus"
)

const (
	// ErrConnection is shown when the listing cannot be fetched
	ErrConnection = "Não foi possível conectar ao servidor. Verifique se a API está rodando."
	// ErrStats is shown when the statistics cannot be fetched
	ErrStats = "Erro ao carregar estatísticas. Tente novamente mais tarde."
)

// Source is the data the dashboard reads. *api.Client implements it.
type Source interface {
	ListOperadoras(ctx context.Context, params api.ListParams) (*api.OperadoraPage, error)
	Estatisticas(ctx context.Context) (*api.Estatisticas, error)
	Despesas(ctx context.Context, cnpj api.CNPJ) ([]api.Despesa, error)
}

// Controller owns the dashboard state. All methods are safe for concurrent use;
// the blocking ones are meant to be run off the UI goroutine.
type Controller struct {
	source Source
	charts ChartRenderer
	log    logrus.FieldLogger

	mu        sync.Mutex
	state     State
	listSeq   uint64
	detailSeq uint64
	listeners []func(State)

	chartMu sync.Mutex
	chart   Chart
}

// New creates a controller on the first page of the list tab
func New(source Source, charts ChartRenderer, log logrus.FieldLogger) *Controller {
	return &Controller{
		source: source,
		charts: charts,
		log:    log,
		state: State{
			PageState: PageState{Tab: TabList, Page: 1, Limit: api.DefaultLimit},
		},
	}
}

// OnChange registers fn to receive a snapshot after every state change
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// update applies fn under the lock and notifies listeners with the result
func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.clone()
	listeners := append(([]func(State))(nil), c.listeners...)
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// FetchOperadoras loads one page of the listing with the current search query.
// Only the most recently issued fetch is applied.
func (c *Controller) FetchOperadoras(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	var (
		seq    uint64
		params api.ListParams
	)
	c.update(func(s *State) {
		c.listSeq++
		seq = c.listSeq
		params = api.ListParams{Page: page, Limit: s.Limit, Search: s.SearchQuery}
		s.Loading = true
		s.ErrorMessage = ""
	})

	log := c.log.WithFields(logrus.Fields{"page": params.Page, "search": params.Search, "seq": seq})
	log.Debug("fetching operadoras")

	result, err := c.source.ListOperadoras(ctx, params)

	applied := false
	c.update(func(s *State) {
		if seq != c.listSeq {
			return
		}
		applied = true
		defer func() { s.Loading = false }()

		if err != nil {
			s.ErrorMessage = ErrConnection
			s.Operadoras = nil
			s.TotalItems = 0
			return
		}
		s.Operadoras = result.Data
		s.TotalItems = result.Total
		s.Page = page
		if result.Page > 0 {
			s.Page = result.Page
		}
	})

	switch {
	case !applied:
		log.Debug("discarding superseded operadoras response")
		return nil
	case err != nil:
		log.WithError(err).Error("fetch operadoras failed")
		return err
	}
	log.WithField("total", result.Total).Info("operadoras loaded")
	return nil
}

// SetSearch stores the search query used by the next fetch
func (c *Controller) SetSearch(query string) {
	c.update(func(s *State) { s.SearchQuery = query })
}

// ClearSearch resets the query and reloads the first page
func (c *Controller) ClearSearch(ctx context.Context) error {
	c.SetSearch("")
	return c.FetchOperadoras(ctx, 1)
}

// NextPage fetches the following page if there is one
func (c *Controller) NextPage(ctx context.Context) error {
	s := c.State()
	if s.Page >= s.TotalPages() {
		return nil
	}
	return c.FetchOperadoras(ctx, s.Page+1)
}

// PrevPage fetches the previous page if there is one
func (c *Controller) PrevPage(ctx context.Context) error {
	s := c.State()
	if s.Page <= 1 {
		return nil
	}
	return c.FetchOperadoras(ctx, s.Page-1)
}

// Refresh reloads the current page
func (c *Controller) Refresh(ctx context.Context) error {
	return c.FetchOperadoras(ctx, c.State().Page)
}

// ShowList switches to the list tab
func (c *Controller) ShowList() {
	c.update(func(s *State) { s.Tab = TabList })
	c.log.WithField("tab", TabList.String()).Debug("tab changed")
}

// LoadStats switches to the stats tab and loads the statistics. On failure the
// previously loaded statistics stay visible.
func (c *Controller) LoadStats(ctx context.Context) error {
	c.update(func(s *State) {
		s.Tab = TabStats
		s.ErrorMessage = ""
		s.LoadingStats = true
	})
	c.log.WithField("tab", TabStats.String()).Debug("tab changed")

	stats, err := c.source.Estatisticas(ctx)
	if err != nil {
		c.log.WithError(err).Error("load stats failed")
		c.update(func(s *State) {
			s.LoadingStats = false
			s.ErrorMessage = ErrStats
		})
		return err
	}

	c.update(func(s *State) {
		s.LoadingStats = false
		s.Stats = *stats
	})
	c.renderChart(stats.DistribuicaoUF)
	c.log.WithField("ufs", len(stats.DistribuicaoUF)).Info("stats loaded")
	return nil
}

// OpenDetails selects record and loads its expenses. Failures leave an empty
// expense list and are only logged. Only the latest open applies its result.
func (c *Controller) OpenDetails(ctx context.Context, record api.Operadora) {
	selected := record
	var seq uint64
	c.update(func(s *State) {
		c.detailSeq++
		seq = c.detailSeq
		s.Selected = &selected
		s.Despesas = nil
		s.LoadingDetails = true
	})

	despesas, err := c.source.Despesas(ctx, record.CNPJ)
	if err != nil {
		c.log.WithError(err).WithField("cnpj", record.CNPJ).Warn("load despesas failed")
		despesas = nil
	}

	c.update(func(s *State) {
		if seq != c.detailSeq || s.Selected == nil {
			c.log.WithField("cnpj", record.CNPJ).Debug("discarding stale despesas response")
			return
		}
		s.Despesas = despesas
		s.LoadingDetails = false
	})
}

// CloseDetails clears the selection
func (c *Controller) CloseDetails() {
	c.update(func(s *State) { s.DetailState = DetailState{} })
}
