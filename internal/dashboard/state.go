package dashboard

import "github.com/jdlms/operadoras-dashboard/internal/api"

// Tab is the active dashboard view
type Tab int

const (
	TabList Tab = iota
	TabStats
)

func (t Tab) String() string {
	switch t {
	case TabStats:
		return "stats"
	default:
		return "list"
	}
}

// PageState is the listing part of the dashboard state
type PageState struct {
	Tab          Tab
	Page         int
	Limit        int
	TotalItems   int
	SearchQuery  string
	Loading      bool
	ErrorMessage string
}

// TotalPages is ceil(TotalItems/Limit)
func (p PageState) TotalPages() int {
	if p.Limit <= 0 || p.TotalItems <= 0 {
		return 0
	}
	return (p.TotalItems + p.Limit - 1) / p.Limit
}

// DetailState is the expense detail of the selected operadora
type DetailState struct {
	Selected       *api.Operadora
	Despesas       []api.Despesa
	LoadingDetails bool
}

// State is a snapshot of everything the presentation layer renders
type State struct {
	PageState
	Operadoras   []api.Operadora
	Stats        api.Estatisticas
	LoadingStats bool
	DetailState
}

// clone copies the slices so a snapshot never aliases controller state
func (s State) clone() State {
	out := s
	out.Operadoras = append([]api.Operadora(nil), s.Operadoras...)
	out.Despesas = append([]api.Despesa(nil), s.Despesas...)
	out.Stats.TopOperadoras = append([]api.TopOperadora(nil), s.Stats.TopOperadoras...)
	out.Stats.DistribuicaoUF = append([]api.UFTotal(nil), s.Stats.DistribuicaoUF...)
	if s.Selected != nil {
		selected := *s.Selected
		out.Selected = &selected
	}
	return out
}
