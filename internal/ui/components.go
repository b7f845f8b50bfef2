package ui

import (
	"github.com/rivo/tview"
)

// FooterHelp lists the key bindings
const FooterHelp = "q sair | 1 lista | 2 estatísticas | / buscar | c limpar busca | n/p página | r recarregar | Enter detalhes | Esc fechar | x exportar"

// CreateHeader creates the tab bar
func CreateHeader() *tview.TextView {
	header := tview.NewTextView()
	header.SetBorder(true)
	header.SetTitle("Despesas das Operadoras")
	header.SetTextAlign(tview.AlignCenter)
	header.SetDynamicColors(true)
	return header
}

// CreateStatus creates the one-line status view for loading and error messages
func CreateStatus() *tview.TextView {
	status := tview.NewTextView()
	status.SetTextAlign(tview.AlignCenter)
	status.SetDynamicColors(true)
	return status
}

// CreateFooter creates the footer text view with help text
func CreateFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText(FooterHelp)
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}

// CreateSearch creates the search input
func CreateSearch() *tview.InputField {
	search := tview.NewInputField()
	search.SetLabel("Buscar (razão social ou CNPJ): ")
	search.SetFieldWidth(0)
	search.SetBorder(true)
	return search
}

// CreateMainTable creates the operadoras table
func CreateMainTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Operadoras")
	table.SetSelectable(true, false) // Allow row selection but not column selection
	table.SetFixed(1, 0)             // Fix the first row as header
	return table
}

// CreateStatsView creates the text view with the summary figures
func CreateStatsView() *tview.TextView {
	view := tview.NewTextView()
	view.SetBorder(true).SetTitle("Resumo")
	view.SetDynamicColors(true)
	view.SetWrap(true)
	return view
}

// CreateTopTable creates the top 5 ranking table
func CreateTopTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Top 5 Operadoras")
	table.SetFixed(1, 0)
	return table
}

// CreateDetailsTable creates the expense table shown over the listing
func CreateDetailsTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Despesas")
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	return table
}
