// Package tax converts tax-inclusive retail prices into the exclusive
// price, tax amount and total breakdown required on fiscal documents.
// All functions are pure; callers validate quantities and prices.
package tax

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// Calculator computes fixed-point tax breakdowns at a single rate.
type Calculator struct {
	percent decimal.Decimal // e.g. 18
	divisor decimal.Decimal // 1 + percent/100
}

// NewCalculator builds a calculator for the given tax percentage (18 for 18%).
func NewCalculator(percent decimal.Decimal) Calculator {
	return Calculator{
		percent: percent,
		divisor: one.Add(percent.Div(decimal.NewFromInt(100))),
	}
}

// Percent returns the rate as a percentage, as the gateway schema expects it.
func (c Calculator) Percent() decimal.Decimal {
	return c.percent
}

// LineBreakdown is the per-line monetary breakdown of a gross unit price.
type LineBreakdown struct {
	UnitValue decimal.Decimal // exclusive unit price, 6 decimal places
	UnitPrice decimal.Decimal // gross unit price as given
	Subtotal  decimal.Decimal // exclusive unit price x quantity, 2 places
	Tax       decimal.Decimal // tax portion x quantity, 2 places
	Total     decimal.Decimal // gross unit price x quantity, 2 places
}

// Line breaks a gross unit price and quantity down into the exclusive price,
// tax and total. Subtotal and Tax are derived from the unrounded exclusive
// quotient; only the reported UnitValue is rounded to 6 places. Rounding is
// half away from zero.
func (c Calculator) Line(unitPrice decimal.Decimal, quantity int) LineBreakdown {
	qty := decimal.NewFromInt(int64(quantity))
	exclusive := unitPrice.Div(c.divisor)

	return LineBreakdown{
		UnitValue: exclusive.Round(6),
		UnitPrice: unitPrice,
		Subtotal:  exclusive.Mul(qty).Round(2),
		Tax:       unitPrice.Sub(exclusive).Mul(qty).Round(2),
		Total:     unitPrice.Mul(qty).Round(2),
	}
}

// Totals is the order-level aggregate of the line totals.
type Totals struct {
	Total   decimal.Decimal // sum of line totals
	Taxable decimal.Decimal // exclusive total, 2 places
	Tax     decimal.Decimal // Total - Taxable
}

// OrderTotals aggregates line totals into the order total, the taxable
// (exclusive) base and the tax amount. The tax amount is the difference,
// so Taxable + Tax always reproduces Total exactly.
func (c Calculator) OrderTotals(lineTotals []decimal.Decimal) Totals {
	total := decimal.Zero
	for _, t := range lineTotals {
		total = total.Add(t)
	}

	taxable := total.Div(c.divisor).Round(2)

	return Totals{
		Total:   total,
		Taxable: taxable,
		Tax:     total.Sub(taxable),
	}
}
