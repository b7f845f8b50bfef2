package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/dashboard"
	"github.com/jdlms/operadoras-dashboard/internal/format"

	"github.com/rivo/tview"
)

// TableData is a title plus rows, the first row being the header
type TableData struct {
	Title string
	Rows  [][]string
	// HighlightTop marks the three largest amounts of this column, -1 for none
	HighlightTop int
}

// PopulateTable fills the table with data. Cell text is escaped, so API values
// never act as color tags.
func PopulateTable(table *tview.Table, data TableData) {
	if table == nil {
		return
	}

	table.Clear()
	table.SetTitle(data.Title)

	if len(data.Rows) == 0 {
		table.SetCell(0, 0, tview.NewTableCell("Nenhum dado disponível").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
		return
	}

	for col, cell := range data.Rows[0] {
		table.SetCell(0, col, tview.NewTableCell("[yellow::b]"+tview.Escape(cell)+"[-::-]").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	top := map[int]bool{}
	if data.HighlightTop >= 0 {
		top = findTopRows(data.Rows, data.HighlightTop, 3)
	}

	for row := 1; row < len(data.Rows); row++ {
		for col, cell := range data.Rows[row] {
			color := "[white]"
			if col == data.HighlightTop && top[row] {
				color = "[yellow]"
			}
			align := tview.AlignLeft
			if col == data.HighlightTop {
				align = tview.AlignRight
			}
			table.SetCell(row, col, tview.NewTableCell(color+tview.Escape(cell)+"[-]").
				SetAlign(align).
				SetExpansion(1).
				SetSelectable(true))
		}
	}
}

// parseAmount reads a pt-BR formatted amount such as 1.234,50
func parseAmount(amountStr string) float64 {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(amountStr, ".", ""), ",", ".")
	amount, _ := strconv.ParseFloat(cleaned, 64)
	return amount
}

// findTopRows returns the rows holding the n largest positive amounts of col
func findTopRows(rows [][]string, col, n int) map[int]bool {
	type amountRow struct {
		amount float64
		row    int
	}

	var amounts []amountRow
	for row := 1; row < len(rows); row++ {
		if col < len(rows[row]) {
			if amount := parseAmount(rows[row][col]); amount > 0 {
				amounts = append(amounts, amountRow{amount: amount, row: row})
			}
		}
	}
	sort.SliceStable(amounts, func(i, j int) bool { return amounts[i].amount > amounts[j].amount })

	result := make(map[int]bool)
	for i := 0; i < len(amounts) && i < n; i++ {
		result[amounts[i].row] = true
	}
	return result
}

// OperadorasTable builds the listing table for a state snapshot
func OperadorasTable(s dashboard.State) TableData {
	title := fmt.Sprintf("Operadoras (página %d de %d, %d registros)", s.Page, max(s.TotalPages(), 1), s.TotalItems)
	if s.SearchQuery != "" {
		title += fmt.Sprintf(" busca: %q", s.SearchQuery)
	}

	rows := [][]string{{"CNPJ", "Razão Social", "UF", "Modalidade"}}
	for _, op := range s.Operadoras {
		rows = append(rows, []string{format.CNPJ(op.CNPJ.String()), orPlaceholder(op.RazaoSocial), orPlaceholder(op.UF), orPlaceholder(op.Modalidade)})
	}
	if len(s.Operadoras) == 0 {
		rows = append(rows, []string{"", "Nenhuma operadora encontrada", "", ""})
	}
	return TableData{Title: title, Rows: rows, HighlightTop: -1}
}

// DespesasTable builds the expense table of the selected operadora
func DespesasTable(d dashboard.DetailState) TableData {
	title := "Despesas"
	if d.Selected != nil {
		title = fmt.Sprintf("Despesas - %s (%s)", orPlaceholder(d.Selected.RazaoSocial), format.CNPJ(d.Selected.CNPJ.String()))
	}

	rows := [][]string{{"Data de Referência", "Valor (R$)"}}
	switch {
	case d.LoadingDetails:
		rows = append(rows, []string{"Carregando...", ""})
	case len(d.Despesas) == 0:
		rows = append(rows, []string{"Nenhuma despesa encontrada", ""})
	default:
		for _, desp := range d.Despesas {
			rows = append(rows, []string{format.Date(desp.DataReferencia), format.Money(desp.ValorDespesa)})
		}
	}
	return TableData{Title: title, Rows: rows, HighlightTop: 1}
}

// TopOperadorasTable builds the top 5 ranking table
func TopOperadorasTable(top []api.TopOperadora) TableData {
	rows := [][]string{{"#", "Razão Social", "Total (R$)"}}
	for i, t := range top {
		rows = append(rows, []string{strconv.Itoa(i + 1), orPlaceholder(t.RazaoSocial), format.Money(t.Total)})
	}
	return TableData{Title: "Top 5 Operadoras", Rows: rows, HighlightTop: -1}
}

// StatsSummaryText renders the headline figures for the stats view
func StatsSummaryText(s dashboard.State) string {
	if s.LoadingStats {
		return "[yellow]Carregando estatísticas...[-]"
	}
	return fmt.Sprintf("Total geral de despesas: [::b]R$ %s[::-]\nMédia por lançamento: [::b]R$ %s[::-]\nUFs com despesas: %d",
		format.Money(s.Stats.TotalGeral), format.Money(s.Stats.MediaLancamento), len(s.Stats.DistribuicaoUF))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return format.Placeholder
	}
	return s
}
