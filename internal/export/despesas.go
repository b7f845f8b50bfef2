// Package export writes expense data to spreadsheet files
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/format"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the expenses
const SheetName = "Despesas"

// first data row; rows above hold the operadora header and column titles
const firstDataRow = 5

// WriteDespesas writes an XLSX workbook with the operadora header and its expenses to w
func WriteDespesas(w io.Writer, op api.Operadora, despesas []api.Despesa) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1A659E"}, Pattern: 1},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("money style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("bold style: %w", err)
	}

	cells := []struct {
		cell  string
		value any
	}{
		{"A1", "Operadora"},
		{"B1", op.RazaoSocial},
		{"A2", "CNPJ"},
		{"B2", format.CNPJ(op.CNPJ.String())},
		{"A4", "Data de Referência"},
		{"B4", "Valor (R$)"},
	}
	for _, c := range cells {
		if err := f.SetCellValue(SheetName, c.cell, c.value); err != nil {
			return fmt.Errorf("set %s: %w", c.cell, err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "A2", boldStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A4", "B4", headerStyle); err != nil {
		return err
	}

	total := decimal.Zero
	row := firstDataRow
	for _, d := range despesas {
		if err := f.SetCellValue(SheetName, cellName(1, row), format.Date(d.DataReferencia)); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cellName(2, row), d.ValorDespesa.InexactFloat64()); err != nil {
			return err
		}
		total = total.Add(d.ValorDespesa)
		row++
	}

	if err := f.SetCellValue(SheetName, cellName(1, row), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, cellName(2, row), total.InexactFloat64()); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, cellName(1, row), cellName(2, row), boldStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, cellName(2, firstDataRow), cellName(2, row), moneyStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "B", 22); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveDespesas writes the workbook to dir and returns the file path
func SaveDespesas(dir string, op api.Operadora, despesas []api.Despesa) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(op.CNPJ))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteDespesas(file, op, despesas); err != nil {
		return "", err
	}
	return path, file.Close()
}

// FileName is the default export file name for an operadora
func FileName(cnpj api.CNPJ) string {
	safe := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, cnpj.String())
	if safe == "" {
		safe = "operadora"
	}
	return "despesas_" + safe + ".xlsx"
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
