// Package fee computes the platform commission ("provision Moverz").
// The fee is layered on top of the mover's own quoted price and always
// reported separately from it.
package fee

import (
	"github.com/shopspring/decimal"

	"moverz/core/tariff"
)

// Provision returns max(minimum fee, center * rate) in euros.
func Provision(centerEur decimal.Decimal, t *tariff.Tariff) decimal.Decimal {
	proportional := centerEur.Mul(decimal.NewFromFloat(t.FeeRate)).Round(2)
	minimum := decimal.NewFromFloat(t.FeeMinEur)
	if proportional.LessThan(minimum) {
		return minimum
	}
	return proportional
}
