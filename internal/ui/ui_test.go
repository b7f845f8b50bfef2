package ui

import (
	"strings"
	"testing"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulateTable(t *testing.T) {
	table := CreateMainTable()
	PopulateTable(table, TableData{
		Title:        "Despesas",
		Rows:         [][]string{{"Data", "Valor"}, {"01/01/2024", "10,00"}, {"02/01/2024", "1.500,00"}, {"03/01/2024", "[red]5,00"}},
		HighlightTop: -1,
	})

	assert.Equal(t, 4, table.GetRowCount())
	assert.Contains(t, table.GetCell(0, 0).Text, "Data")
	assert.Contains(t, table.GetCell(2, 1).Text, "1.500,00")
	assert.Contains(t, table.GetCell(3, 1).Text, "[red[]5,00")
}

func TestPopulateTableEmpty(t *testing.T) {
	table := CreateMainTable()
	PopulateTable(table, TableData{Title: "x"})
	assert.Equal(t, "Nenhum dado disponível", table.GetCell(0, 0).Text)
}

func TestFindTopRows(t *testing.T) {
	rows := [][]string{
		{"Data", "Valor"},
		{"a", "10,00"},
		{"b", "1.500,00"},
		{"c", "0,00"},
		{"d", "700,50"},
		{"e", "20,00"},
	}
	top := findTopRows(rows, 1, 3)
	assert.Equal(t, map[int]bool{2: true, 4: true, 5: true}, top)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1234.5, parseAmount("1.234,50"))
	assert.Equal(t, 0.0, parseAmount("-"))
}

func TestOperadorasTable(t *testing.T) {
	s := dashboard.State{
		PageState: dashboard.PageState{Page: 2, Limit: 10, TotalItems: 15, SearchQuery: "unimed"},
		Operadoras: []api.Operadora{
			{CNPJ: "12345678000195", RazaoSocial: "Unimed", UF: "SP"},
		},
	}
	data := OperadorasTable(s)

	assert.Contains(t, data.Title, "página 2 de 2")
	assert.Contains(t, data.Title, `"unimed"`)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"12.345.678/0001-95", "Unimed", "SP", "-"}, data.Rows[1])
}

func TestDespesasTable(t *testing.T) {
	op := api.Operadora{CNPJ: "123", RazaoSocial: "Saude SA"}

	loading := DespesasTable(dashboard.DetailState{Selected: &op, LoadingDetails: true})
	assert.Equal(t, "Carregando...", loading.Rows[1][0])

	empty := DespesasTable(dashboard.DetailState{Selected: &op})
	assert.Equal(t, "Nenhuma despesa encontrada", empty.Rows[1][0])

	full := DespesasTable(dashboard.DetailState{Selected: &op, Despesas: []api.Despesa{
		{DataReferencia: "2024-03-05 00:00:00", ValorDespesa: decimal.NewFromFloat(1234.5)},
	}})
	assert.Equal(t, []string{"05/03/2024", "1.234,50"}, full.Rows[1])
	assert.Contains(t, full.Title, "Saude SA")
}

func TestStatsSummaryText(t *testing.T) {
	s := dashboard.State{Stats: api.Estatisticas{TotalGeral: decimal.NewFromFloat(1234.5)}}
	assert.Contains(t, StatsSummaryText(s), "R$ 1.234,50")

	s.LoadingStats = true
	assert.Contains(t, StatsSummaryText(s), "Carregando")
}

func TestChartRendererReplacesBars(t *testing.T) {
	chart := NewBarChart("UF")
	redraws := 0
	r := NewChartRenderer(chart, func() { redraws++ })

	first := r.RenderChart([]api.UFTotal{{UF: "SP", Total: decimal.NewFromInt(10)}})
	first.Destroy()
	assert.Empty(t, chart.Bars())

	second := r.RenderChart([]api.UFTotal{{UF: "RJ", Total: decimal.NewFromInt(5)}})
	first.Destroy()
	require.Len(t, chart.Bars(), 1)
	assert.Equal(t, "RJ", chart.Bars()[0].Label)

	second.Destroy()
	assert.Empty(t, chart.Bars())
	assert.Equal(t, 4, redraws)
}

func TestBarChartDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 8)

	chart := NewBarChart("Despesas por UF")
	chart.SetRect(0, 0, 60, 8)
	chart.SetBars([]Bar{{Label: "SP", Value: 700}, {Label: "RJ", Value: 350}})
	chart.Draw(screen)

	line := func(y int) string {
		var b strings.Builder
		for x := 0; x < 60; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			b.WriteRune(r)
		}
		return b.String()
	}

	first, second := line(1), line(2)
	assert.Contains(t, first, "SP")
	assert.Contains(t, first, "700,00")
	assert.Greater(t, strings.Count(first, "█"), strings.Count(second, "█"))
	assert.Contains(t, second, "RJ")
}

func TestSetupRosePineTheme(t *testing.T) {
	saved := tview.Styles
	t.Cleanup(func() { tview.Styles = saved })

	SetupRosePineTheme()

	assert.Equal(t, paletteBase, tview.Styles.PrimitiveBackgroundColor)
	assert.Equal(t, paletteRose, tview.Styles.TitleColor)
	assert.Equal(t, palettePine, BarColor)
	assert.Equal(t, BarColor, NewBarChart("UF").barColor)
}
