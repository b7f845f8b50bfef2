// Package types: internal types
package types

import (
	"context"

	"github.com/jdlms/operadoras-dashboard/internal/config"
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/ui"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

// Page names used with tview.Pages
const (
	PageList    = "list"
	PageStats   = "stats"
	PageDetails = "details"
)

// AppState holds the main application state
type AppState struct {
	App          *tview.Application
	Grid         *tview.Grid
	Pages        *tview.Pages
	Header       *tview.TextView
	Status       *tview.TextView
	Footer       *tview.TextView
	Search       *tview.InputField
	MainTable    *tview.Table
	StatsView    *tview.TextView
	TopTable     *tview.Table
	Chart        *ui.BarChart
	DetailsTable *tview.Table

	Controller *dashboard.Controller
	Config     *config.Config
	Log        logrus.FieldLogger

	// Ctx is cancelled when the application stops
	Ctx    context.Context
	Cancel context.CancelFunc
}
