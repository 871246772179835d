package messaging

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Peso ₱2,500 / ₱1,234.50
func Peso(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return printer.Sprintf("₱%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("₱%.2f", f)
}

func percent(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}
