// state.go - renders dashboard snapshots into the widgets
package app

import (
	"fmt"

	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/types"
	"github.com/jdlms/operadoras-dashboard/internal/ui"
)

// Render updates every widget from s. It must run on the event loop.
func Render(state *types.AppState, s dashboard.State) {
	state.Header.SetText(tabsText(s.Tab))
	state.Status.SetText(statusText(s))

	ui.PopulateTable(state.MainTable, ui.OperadorasTable(s))
	if state.App.GetFocus() != state.Search && state.Search.GetText() != s.SearchQuery {
		state.Search.SetText(s.SearchQuery)
	}

	state.StatsView.SetText(ui.StatsSummaryText(s))
	ui.PopulateTable(state.TopTable, ui.TopOperadorasTable(s.Stats.TopOperadoras))

	renderPages(state, s)
}

// renderPages switches pages only when needed so focus is not disturbed
func renderPages(state *types.AppState, s dashboard.State) {
	want := types.PageList
	if s.Tab == dashboard.TabStats {
		want = types.PageStats
	}

	front, _ := state.Pages.GetFrontPage()
	if s.Selected == nil && front == types.PageDetails {
		state.Pages.HidePage(types.PageDetails)
		state.App.SetFocus(state.MainTable)
		front, _ = state.Pages.GetFrontPage()
	}

	if front != types.PageDetails && front != want {
		state.Pages.SwitchToPage(want)
		if want == types.PageList {
			state.App.SetFocus(state.MainTable)
		}
		front = want
	}

	if s.Selected != nil {
		ui.PopulateTable(state.DetailsTable, ui.DespesasTable(s.DetailState))
		if front != types.PageDetails && s.Tab == dashboard.TabList {
			state.Pages.ShowPage(types.PageDetails)
			state.App.SetFocus(state.DetailsTable)
		}
	}
}

func tabsText(tab dashboard.Tab) string {
	list, stats := "[::d]1 Operadoras[::-]", "[::d]2 Estatísticas[::-]"
	if tab == dashboard.TabStats {
		stats = "[::br] 2 Estatísticas [::-]"
	} else {
		list = "[::br] 1 Operadoras [::-]"
	}
	return fmt.Sprintf("%s    %s", list, stats)
}

func statusText(s dashboard.State) string {
	switch {
	case s.ErrorMessage != "":
		return "[red]" + s.ErrorMessage + "[-]"
	case s.Loading:
		return "[yellow]Carregando operadoras...[-]"
	case s.LoadingStats:
		return "[yellow]Carregando estatísticas...[-]"
	case s.LoadingDetails:
		return "[yellow]Carregando despesas...[-]"
	}
	return ""
}
