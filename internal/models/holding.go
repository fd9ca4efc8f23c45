package models

import (
	"encoding/json"
	"fmt"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/validation"
)

// Holding is a mutual fund position as of a date.
type Holding struct {
	AsOfDate    string  `json:"as_of_date"`
	UnitPrice   Decimal `json:"unit_price"`
	Units       Decimal `json:"units"`
	MarketValue Decimal `json:"market_value"`
	BookValue   Decimal `json:"book_value"`
}

type rawHolding struct {
	AsOfDate    string   `json:"as_of_date" validate:"required,noStartEndSpaces"`
	UnitPrice   *Decimal `json:"unit_price" validate:"required"`
	Units       *Decimal `json:"units" validate:"required"`
	MarketValue *Decimal `json:"market_value" validate:"required"`
	BookValue   *Decimal `json:"book_value" validate:"required"`
}

// ParseHolding decodes one holding object and checks every column is present.
// The date is kept verbatim in whatever format the API sends. Unknown fields
// are ignored.
func ParseHolding(data []byte) (Holding, error) {
	var raw rawHolding
	if err := json.Unmarshal(data, &raw); err != nil {
		return Holding{}, fmt.Errorf("failed to decode holding: %w", err)
	}

	if err := validation.ValidateStruct(raw); err != nil {
		return Holding{}, fmt.Errorf("%w: holding: %v", common.ErrValidation, err)
	}

	return Holding{
		AsOfDate:    raw.AsOfDate,
		UnitPrice:   *raw.UnitPrice,
		Units:       *raw.Units,
		MarketValue: *raw.MarketValue,
		BookValue:   *raw.BookValue,
	}, nil
}

// AverageUnitPrice is BookValue / Units.
func (h Holding) AverageUnitPrice() (Decimal, error) {
	if h.Units.IsZero() {
		return Decimal{}, fmt.Errorf("%w: as of %s", common.ErrDivisionByZero, h.AsOfDate)
	}

	return h.BookValue.Div(h.Units), nil
}

// Gain is MarketValue - BookValue.
func (h Holding) Gain() Decimal {
	return h.MarketValue.Sub(h.BookValue)
}

// HoldingRow is one spreadsheet row, keyed by Date within a tab.
type HoldingRow struct {
	Date             string
	UnitPrice        Decimal
	Units            Decimal
	MarketValue      Decimal
	BookValue        Decimal
	AverageUnitPrice Decimal
	Gain             Decimal
}

var HoldingRowHeader = []string{"date", "unit_price", "units", "market_value", "book_value", "average_unit_price", "gain"}

func NewHoldingRow(h Holding) (HoldingRow, error) {
	avg, err := h.AverageUnitPrice()
	if err != nil {
		return HoldingRow{}, err
	}

	return HoldingRow{
		Date:             h.AsOfDate,
		UnitPrice:        h.UnitPrice,
		Units:            h.Units,
		MarketValue:      h.MarketValue,
		BookValue:        h.BookValue,
		AverageUnitPrice: avg,
		Gain:             h.Gain(),
	}, nil
}

// Values returns the row in column order.
func (r HoldingRow) Values() []interface{} {
	return []interface{}{
		r.Date,
		r.UnitPrice,
		r.Units,
		r.MarketValue,
		r.BookValue,
		r.AverageUnitPrice,
		r.Gain,
	}
}

func (r HoldingRow) Strings() []string {
	return []string{
		r.Date,
		r.UnitPrice.String(),
		r.Units.String(),
		r.MarketValue.String(),
		r.BookValue.String(),
		r.AverageUnitPrice.String(),
		r.Gain.String(),
	}
}
