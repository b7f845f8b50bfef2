package app

import (
	"context"

	"github.com/jdlms/operadoras-dashboard/internal/config"
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/types"
	"github.com/jdlms/operadoras-dashboard/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// CreateApp builds the widgets, wires them to a dashboard controller reading
// from source and returns the application state
func CreateApp(cfg *config.Config, source dashboard.Source, log logrus.FieldLogger) *types.AppState {
	ui.SetupRosePineTheme()

	state := &types.AppState{
		Config: cfg,
		Log:    log,
	}
	state.Ctx, state.Cancel = context.WithCancel(context.Background())

	// Create components
	state.Header = ui.CreateHeader()
	state.Status = ui.CreateStatus()
	state.Footer = ui.CreateFooter()
	state.Search = ui.CreateSearch()
	state.MainTable = ui.CreateMainTable()
	state.StatsView = ui.CreateStatsView()
	state.TopTable = ui.CreateTopTable()
	state.Chart = ui.NewBarChart("Total de Despesas por UF")
	state.DetailsTable = ui.CreateDetailsTable()

	// Every page is mounted up front, so the chart target always exists
	state.Pages = tview.NewPages().
		AddPage(types.PageList, ui.ListPage(state.Search, state.MainTable), true, true).
		AddPage(types.PageStats, ui.StatsPage(state.StatsView, state.TopTable, state.Chart), true, false).
		AddPage(types.PageDetails, ui.Centered(state.DetailsTable, 70, 20), true, false)

	state.Grid = ui.SetupGrid(state.Header, state.Status, state.Pages, state.Footer)

	state.App = tview.NewApplication().
		SetRoot(state.Grid, true).
		SetFocus(state.MainTable)

	charts := ui.NewChartRenderer(state.Chart, func() {
		go state.App.QueueUpdateDraw(func() {})
	})
	state.Controller = dashboard.New(source, charts, log)

	// Render the latest snapshot on every change; updates are queued from a
	// separate goroutine because changes also happen on the event loop
	state.Controller.OnChange(func(dashboard.State) {
		go state.App.QueueUpdateDraw(func() {
			Render(state, state.Controller.State())
		})
	})

	setupWidgetHandlers(state)
	SetupKeyBindings(state)

	Render(state, state.Controller.State())

	go func() {
		_ = state.Controller.FetchOperadoras(state.Ctx, 1)
	}()

	return state
}

// setupWidgetHandlers connects table selection and the search field to the controller
func setupWidgetHandlers(state *types.AppState) {
	state.MainTable.SetSelectedFunc(func(row, column int) {
		s := state.Controller.State()
		if row < 1 || row > len(s.Operadoras) {
			return
		}
		record := s.Operadoras[row-1]
		state.Log.WithField("cnpj", record.CNPJ).Debug("opening details")
		go state.Controller.OpenDetails(state.Ctx, record)
	})

	state.Search.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			query := state.Search.GetText()
			go func() {
				state.Controller.SetSearch(query)
				_ = state.Controller.FetchOperadoras(state.Ctx, 1)
			}()
			state.App.SetFocus(state.MainTable)
		case tcell.KeyEscape:
			state.App.SetFocus(state.MainTable)
		}
	})
}

// Stop cancels in-flight requests and stops the event loop
func Stop(state *types.AppState) {
	state.Cancel()
	state.App.Stop()
}
