package billing

import (
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Finalize applies chain to the breakdown subtotal and adds tax. The subtotal
// is already rounded to cents, and the adjusted amount and tax are rounded
// again here, so Total can differ from a single end rounding by 0.01.
func Finalize(b domain.PriceBreakdown, chain Chain, taxRate decimal.Decimal) domain.Quote {
	adjusted := chain.Apply(b.Subtotal).Round(moneyPlaces)
	tax := adjusted.Mul(taxRate).Round(moneyPlaces)

	return domain.Quote{
		Breakdown: b,
		Adjusted:  adjusted,
		Tax:       tax,
		Total:     adjusted.Add(tax),
		Applied:   chain.Describe(),
	}
}
