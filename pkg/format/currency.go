// Package format renders amounts the way the console shows them.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount rounds to whole currency units (half away from zero) and separates
// thousands with spaces, e.g. 1234567.5 -> "1 234 568".
func Amount(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + groupThousands(rounded.StringFixed(0), ' ')
}

// AmountWithCurrency is Amount followed by a currency label, e.g. "1 970 Kč".
func AmountWithCurrency(amount float64, currency string) string {
	formatted := Amount(amount)
	if currency = strings.TrimSpace(currency); currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

func groupThousands(intPart string, separator rune) string {
	if len(intPart) <= 3 {
		return intPart
	}

	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteRune(separator)
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
