// Package baseline computes the frozen, conservative first estimate shown
// early in the funnel, before exact addresses are known.
package baseline

import (
	"time"

	"github.com/shopspring/decimal"

	"moverz/core/move"
	"moverz/core/pricing"
	"moverz/internal/errors"
)

// Frozen is a captured first estimate. Once captured it is an anchor for
// the rest of the funnel session and must never be silently recomputed,
// even if the inputs that produced it change.
type Frozen struct {
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Center decimal.Decimal `json:"center"`

	VolumeM3   float64          `json:"volume_m3"`
	DistanceKm float64          `json:"distance_km"`
	SurfaceM2  float64          `json:"surface_m2"`
	Housing    move.HousingType `json:"housing"`
	Tier       move.Tier        `json:"tier"`

	CapturedAt time.Time `json:"captured_at"`
}

// Request builds the conservative, funnel-agnostic move the baseline is
// priced on: buffered city-pair distance, worst-case density, a generic
// kitchen allowance, neutral season and access, no services.
func Request(e *pricing.Engine, surfaceM2, cityDistanceKm float64, housing move.HousingType, tier move.Tier) move.Request {
	t := e.Tariff()
	distance := cityDistanceKm + t.BaselineBufferKm
	return move.Request{
		SurfaceM2:           surfaceM2,
		Housing:             housing,
		Density:             move.DensityDense,
		DistanceKm:          &distance,
		OriginElevator:      move.ElevatorYes,
		DestinationElevator: move.ElevatorYes,
		Tier:                tier,
		Services:            move.Services{Piano: move.PianoNone},
		ExtraVolumeM3:       float64(t.BaselineApplianceCount) * t.ApplianceVolumeM3,
	}
}

// Estimate prices the baseline request. nil means the surface is out of
// range and no baseline can exist yet.
func Estimate(e *pricing.Engine, surfaceM2, cityDistanceKm float64, housing move.HousingType, tier move.Tier) *Frozen {
	req := Request(e, surfaceM2, cityDistanceKm, housing, tier)
	res := e.Compute(req)
	if res == nil {
		return nil
	}
	return &Frozen{
		Min:        res.PriceMin,
		Max:        res.PriceMax,
		Center:     pricing.DisplayedCenter(res),
		VolumeM3:   res.VolumeM3,
		DistanceKm: *req.DistanceKm,
		SurfaceM2:  surfaceM2,
		Housing:    housing,
		Tier:       tier,
		CapturedAt: time.Now().UTC(),
	}
}

// Anchor holds the frozen first estimate of one funnel session and
// enforces the freeze discipline.
type Anchor struct {
	frozen *Frozen
}

// Capture stores the first estimate. Capturing twice is refused: the
// reward the user already saw must not move under them.
func (a *Anchor) Capture(f *Frozen) error {
	if f == nil {
		return errors.Input("cannot capture a nil baseline")
	}
	if a.frozen != nil {
		return errors.New(errors.TypeInternal, "baseline already frozen for this session")
	}
	a.frozen = f
	return nil
}

// Get returns the frozen estimate, if captured.
func (a *Anchor) Get() (*Frozen, bool) {
	return a.frozen, a.frozen != nil
}
