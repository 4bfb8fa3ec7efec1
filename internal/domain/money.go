package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.English)

// FormatCOP renders an exact decimal amount in the receipt currency style,
// e.g. "$1,000 COP". Grouping is presentation only; stored amounts stay exact.
func FormatCOP(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return copPrinter.Sprintf("$%v COP", number.Decimal(amount.IntPart()))
	}
	f, _ := amount.Float64()
	return copPrinter.Sprintf("$%v COP",
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
