// Package currency converts integer cent amounts for display. Formatting
// (string) and unit conversion (numeric) are deliberately separate.
package currency

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders cents as a US dollar string: 123456 -> "$1,234.56".
// The value is split with integer arithmetic, never divided through a
// float, so the cents survive exactly.
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + "$" + printer.Sprintf("%v", number.Decimal(cents/100)) + fmt.Sprintf(".%02d", cents%100)
}

// FormatNull treats a missing amount as zero.
func FormatNull(cents sql.NullInt64) string {
	if !cents.Valid {
		return Format(0)
	}
	return Format(cents.Int64)
}

// MajorUnits converts cents to a numeric dollar amount: 1050 -> 10.5.
func MajorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
