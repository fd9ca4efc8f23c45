package models

import (
	"github.com/shopspring/decimal"
)

// Decimal is a custom type for decimal.Decimal
// the difference from `shopspring` is the json representation is without quotes
// for example the result of this type is 10.5 instead of "10.5"
//
// Sheets receives these as JSON numbers so cells stay numeric with RAW input.
type Decimal struct {
	decimal.Decimal
}

// MustDecimal panics on a malformed value, for constants and tests.
func MustDecimal(value string) Decimal {
	return Decimal{decimal.RequireFromString(value)}
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d Decimal) Sub(o Decimal) Decimal {
	return Decimal{d.Decimal.Sub(o.Decimal)}
}

// Div divides with shopspring's default precision, callers check for zero.
func (d Decimal) Div(o Decimal) Decimal {
	return Decimal{d.Decimal.Div(o.Decimal)}
}
