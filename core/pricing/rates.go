package pricing

import (
	"moverz/core/move"
	"moverz/core/tariff"
)

// BandFor maps a distance to its band. Bands partition [0, inf) km; the
// last band is unbounded.
func (e *Engine) BandFor(distanceKm float64) tariff.Band {
	if distanceKm < 0 {
		distanceKm = 0
	}
	bands := e.tariff.Bands
	for _, b := range bands {
		if b.UpToKm == 0 || distanceKm < b.UpToKm {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Rate returns the effective euros-per-m3 rate for a distance and tier,
// with the decote applied. The decote discounts only variable costs; the
// socle and service add-ons are never discounted.
func (e *Engine) Rate(distanceKm float64, tier move.Tier) float64 {
	return e.BandFor(distanceKm).Rates.For(tier) * (1 + e.tariff.Decote)
}

// VolumeScale returns the economy-of-scale multiplier for a volume. It is
// non-increasing in volume and floored at the last ladder step, so the
// effective rate never collapses to zero on very large moves.
func (e *Engine) VolumeScale(volumeM3 float64) float64 {
	scale := e.tariff.Scale
	for _, s := range scale {
		if s.UpToM3 == 0 || volumeM3 < s.UpToM3 {
			return s.Factor
		}
	}
	return scale[len(scale)-1].Factor
}
