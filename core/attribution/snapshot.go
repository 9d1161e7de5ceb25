package attribution

import (
	"time"

	"github.com/shopspring/decimal"

	"moverz/core/baseline"
	"moverz/core/fee"
	"moverz/core/move"
	"moverz/core/pricing"
	"moverz/internal/errors"
)

// Estimate is one displayed price band.
type Estimate struct {
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Center decimal.Decimal `json:"center"`
}

// TierQuote is one row of the per-tier comparison table.
type TierQuote struct {
	Min   decimal.Decimal `json:"min"`
	Final decimal.Decimal `json:"final"`
	Max   decimal.Decimal `json:"max"`

	// FeeEur is the platform provision, reported separately from the
	// mover's price.
	FeeEur decimal.Decimal `json:"fee_eur"`
}

// Snapshot is the serializable price state attached to a lead: the frozen
// first estimate, the refined estimate, the attribution lines between
// them, and the per-tier table. It is a pure derivation - recomputed on
// every relevant input change, never mutated in place. Only the first
// estimate inside it is frozen state.
type Snapshot struct {
	FirstEstimate Estimate                `json:"first_estimate"`
	Refined       Estimate                `json:"refined"`
	Lines         []Line                  `json:"lines"`
	PerTier       map[move.Tier]TierQuote `json:"per_tier"`

	VolumeM3      float64   `json:"volume_m3"`
	TariffVersion string    `json:"tariff_version"`
	BuiltAt       time.Time `json:"built_at"`
}

// BuildSnapshot derives the full snapshot from the current input and the
// session's frozen baseline. It returns a NOT_PRICEABLE error when the
// configuration cannot be priced yet.
func BuildSnapshot(e *pricing.Engine, in Input, frozen *baseline.Frozen) (*Snapshot, error) {
	if frozen == nil {
		return nil, errors.Input("a frozen baseline is required to build a snapshot")
	}

	lines, final := Attribute(e, in, frozen.Center)
	if final == nil {
		return nil, errors.New(errors.TypeNotPriceable, "configuration is not priceable yet")
	}

	snap := &Snapshot{
		FirstEstimate: Estimate{Min: frozen.Min, Max: frozen.Max, Center: frozen.Center},
		Refined: Estimate{
			Min:    final.PriceMin,
			Max:    final.PriceMax,
			Center: pricing.DisplayedCenter(final),
		},
		Lines:         lines,
		PerTier:       make(map[move.Tier]TierQuote, 3),
		VolumeM3:      final.VolumeM3,
		TariffVersion: e.Tariff().Version,
		BuiltAt:       time.Now().UTC(),
	}

	// The per-tier table reprices the same walked configuration with only
	// the formule swapped, so the rows are comparable.
	for _, tier := range move.AllTiers() {
		req := walkedRequest(e, in)
		req.Tier = tier
		res := e.Compute(req)
		if res == nil {
			continue
		}
		snap.PerTier[tier] = TierQuote{
			Min:    res.PriceMin,
			Final:  res.PriceFinal,
			Max:    res.PriceMax,
			FeeEur: fee.Provision(pricing.DisplayedCenter(res), e.Tariff()),
		}
	}

	return snap, nil
}

// walkedRequest reproduces the configuration the attribution walk ends on:
// neutral defaults overlaid with every confirmed group.
func walkedRequest(e *pricing.Engine, in Input) move.Request {
	running := neutralRequest(e, in)
	for _, key := range CanonicalOrder() {
		if confirmed(in.Confirmed, key) {
			apply(&running, in.Request, key)
		}
	}
	return running
}
