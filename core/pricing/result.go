package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Result is the priced output for one service tier.
type Result struct {
	// VolumeM3 is the estimated volume, one decimal
	VolumeM3 float64 `json:"volume_m3"`

	// PriceMin, PriceFinal, PriceMax bound the quote in whole euros
	PriceMin   decimal.Decimal `json:"price_min"`
	PriceFinal decimal.Decimal `json:"price_final"`
	PriceMax   decimal.Decimal `json:"price_max"`

	// ServicesTotal is the add-on services part of PriceFinal
	ServicesTotal decimal.Decimal `json:"services_total"`
}

// assertOrdered panics when the price band is inverted. That is a
// programmer error, never a data error: the band is built symmetric
// around the final price.
func (r *Result) assertOrdered() {
	if r.VolumeM3 < 0 {
		panic(fmt.Sprintf("PRICING INVARIANT VIOLATED: negative volume %v", r.VolumeM3))
	}
	if r.PriceMin.GreaterThan(r.PriceFinal) || r.PriceFinal.GreaterThan(r.PriceMax) {
		panic(fmt.Sprintf("PRICING INVARIANT VIOLATED: price band inverted min=%s final=%s max=%s",
			r.PriceMin, r.PriceFinal, r.PriceMax))
	}
}

// DisplayedCenter is the single representative point of a price band, used
// for attribution deltas and funnel display. It is the rounded midpoint of
// (min, max), which integer rounding of the band edges can shift off
// PriceFinal by a euro; deltas must therefore always use this function,
// never PriceFinal.
func DisplayedCenter(r *Result) decimal.Decimal {
	return r.PriceMin.Add(r.PriceMax).Div(decimal.NewFromInt(2)).Round(0)
}
