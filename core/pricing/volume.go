package pricing

import (
	"math"

	"moverz/core/move"
)

// Surface bounds outside which a move is not priceable.
const (
	SurfaceMinM2 = 10
	SurfaceMaxM2 = 500
)

// Volume converts a household description to m3, one decimal, half-up.
// ok is false when the surface is out of range or the housing type has no
// coefficient; callers must treat that as "not priceable", not as zero.
func (e *Engine) Volume(surfaceM2 float64, housing move.HousingType, density move.Density, extraM3 float64) (float64, bool) {
	if surfaceM2 < SurfaceMinM2 || surfaceM2 > SurfaceMaxM2 {
		return 0, false
	}
	typeCoeff, ok := e.tariff.HousingCoeff[housing]
	if !ok || typeCoeff <= 0 {
		return 0, false
	}
	densityCoeff, ok := e.tariff.DensityCoeff[density]
	if !ok || densityCoeff <= 0 {
		// Unknown density reads as the conservative worst case.
		densityCoeff = e.tariff.DensityCoeff[move.DensityDense]
	}
	if extraM3 < 0 {
		extraM3 = 0
	}

	baseVolume := surfaceM2 * typeCoeff
	adjustedVolume := baseVolume * densityCoeff
	volumeM3 := math.Floor((adjustedVolume+extraM3)*10+0.5) / 10
	return volumeM3, true
}
