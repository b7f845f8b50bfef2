// Package format holds display helpers shared by the TUI, the CLI and exports
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown in place of missing values
const Placeholder = "-"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Money formats an amount with pt-BR grouping and two decimals, e.g. 1.234,50
func Money(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "0,00"
	}
	return printer.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// MoneyFloat is Money for plain floats
func MoneyFloat(amount float64) string {
	return Money(decimal.NewFromFloat(amount))
}

// Date turns "YYYY-MM-DD[ hh:mm:ss]" into "DD/MM/YYYY"
func Date(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Placeholder
	}

	day := strings.Fields(value)[0]
	day, _, _ = strings.Cut(day, "T")
	parts := strings.Split(day, "-")
	if len(parts) != 3 {
		return day
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// CNPJ formats a 14 digit CNPJ as 00.000.000/0000-00. Other input is returned as is.
func CNPJ(value string) string {
	if len(value) != 14 || strings.Trim(value, "0123456789") != "" {
		return value
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", value[0:2], value[2:5], value[5:8], value[8:12], value[12:14])
}
