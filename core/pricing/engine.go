// Package pricing implements the deterministic move cost model.
// Every function here is pure: no I/O, no shared state, and recomputing
// with identical inputs yields identical outputs. Soft failures are nil
// results, never errors - "not priceable yet" is a normal funnel state.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"moverz/core/move"
	"moverz/core/tariff"
)

// Engine evaluates the cost model against one tariff version.
type Engine struct {
	tariff *tariff.Tariff
	now    func() time.Time
}

// NewEngine creates an engine using the wall clock for urgency.
func NewEngine(t *tariff.Tariff) *Engine {
	return NewEngineAt(t, time.Now)
}

// NewEngineAt creates an engine with an injected clock. Tests pin the clock
// so urgency and idempotence are reproducible.
func NewEngineAt(t *tariff.Tariff, now func() time.Time) *Engine {
	return &Engine{tariff: t, now: now}
}

// Tariff returns the tariff the engine prices against.
func (e *Engine) Tariff() *tariff.Tariff {
	return e.tariff
}

// Compute prices one move request. It returns nil when the request is not
// priceable yet (surface out of range or unresolved distance).
func (e *Engine) Compute(req move.Request) *Result {
	volumeM3, ok := e.Volume(req.SurfaceM2, req.Housing, req.Density, req.ExtraVolumeM3)
	if !ok {
		return nil
	}
	if req.DistanceKm == nil {
		return nil
	}
	km := math.Max(0, *req.DistanceKm)

	rate := e.Rate(km, req.Tier)
	volumeScale := e.VolumeScale(volumeM3)
	volumeCost := volumeM3 * rate * volumeScale

	distanceCost := km * e.tariff.DistanceCoeffPerKm * (1 + e.tariff.Decote)

	// The socle is an absolute floor on the volume part only: tiny moves
	// never price below it, but distance is still billed on top.
	baseNoSeason := math.Max(volumeCost, e.tariff.SocleEur) + distanceCost

	coeffEtage := e.EtageCoeff(req)
	coeffAccess := e.AccessCoeff(req.Access)
	centreNoSeason := baseNoSeason * coeffEtage * coeffAccess

	centreSeasoned := centreNoSeason * e.SeasonFactor(req.MovingDate, e.now())

	servicesTotal := e.ServicesTotal(req.Services, volumeM3)

	final := math.Round(centreSeasoned + servicesTotal)
	min := math.Round(final * (1 - e.tariff.SpreadPct))
	max := math.Round(final * (1 + e.tariff.SpreadPct))

	res := &Result{
		VolumeM3:      volumeM3,
		PriceMin:      decimal.NewFromFloat(min),
		PriceFinal:    decimal.NewFromFloat(final),
		PriceMax:      decimal.NewFromFloat(max),
		ServicesTotal: decimal.NewFromFloat(servicesTotal).Round(2),
	}
	res.assertOrdered()
	return res
}
