package ui

import (
	"github.com/rivo/tview"
)

// SetupGrid configures the main grid layout: tab header, status line, content pages and footer
func SetupGrid(header, status *tview.TextView, pages *tview.Pages, footer *tview.TextView) *tview.Grid {
	grid := tview.NewGrid().
		SetRows(3, 1, 0, 3).
		SetColumns(0).
		SetBorders(false)

	grid.AddItem(header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(status, 1, 0, 1, 1, 0, 0, false)
	grid.AddItem(pages, 2, 0, 1, 1, 0, 0, true)
	grid.AddItem(footer, 3, 0, 1, 1, 0, 0, false)

	return grid
}

// ListPage stacks the search field above the operadoras table
func ListPage(search *tview.InputField, table *tview.Table) *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(search, 3, 0, false).
		AddItem(table, 0, 1, true)
}

// StatsPage puts the summary and ranking beside the UF chart
func StatsPage(summary *tview.TextView, top *tview.Table, chart *BarChart) *tview.Flex {
	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(summary, 5, 0, false).
		AddItem(top, 0, 1, false)

	return tview.NewFlex().
		AddItem(left, 0, 1, false).
		AddItem(chart, 0, 1, false)
}

// Centered wraps p in a box of the given size centered on screen
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
