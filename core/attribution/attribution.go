// Package attribution decomposes the move from the frozen first estimate
// to the refined estimate into an ordered, exactly-summing list of named
// line items.
//
// The cost function is multiplicative, so holding-everything-else-fixed
// per-field deltas would not sum. Instead the engine walks a fixed causal
// order from an all-neutral configuration, fully repricing at each step
// and attributing the marginal change of the displayed center to that
// step. The decomposition is order-dependent by construction; the order
// is pinned to the funnel's field-reveal sequence so the running total a
// user sees always matches what they just answered.
package attribution

import (
	"fmt"

	"github.com/shopspring/decimal"

	"moverz/core/move"
	"moverz/core/pricing"
	"moverz/core/routing"
)

// Key names one causal input group.
type Key string

const (
	KeyDistance          Key = "distance"
	KeyDensity           Key = "density"
	KeyKitchen           Key = "kitchen"
	KeyDate              Key = "date"
	KeyAccessHousing     Key = "access_housing"
	KeyAccessConstraints Key = "access_constraints"
	KeyFormule           Key = "formule"
)

// CanonicalOrder is the fixed causal order of the decomposition. Changing
// it changes every per-line delta; it must stay aligned with the funnel's
// field-reveal sequence.
func CanonicalOrder() []Key {
	return []Key{
		KeyDistance,
		KeyDensity,
		KeyKitchen,
		KeyDate,
		KeyAccessHousing,
		KeyAccessConstraints,
		KeyFormule,
	}
}

var labels = map[Key]string{
	KeyDistance:          "Distance du trajet",
	KeyDensity:           "Densité du logement",
	KeyKitchen:           "Cuisine & électroménager",
	KeyDate:              "Date du déménagement",
	KeyAccessHousing:     "Étages & ascenseur",
	KeyAccessConstraints: "Contraintes d'accès",
	KeyFormule:           "Formule choisie",
}

// Line is one row of the price breakdown.
type Line struct {
	Key       Key             `json:"key"`
	Label     string          `json:"label"`
	Status    string          `json:"status"`
	AmountEur decimal.Decimal `json:"amount_eur"`

	// Confirmed is true only once the user actually supplied this group's
	// input. Unconfirmed groups keep their neutral default and display no
	// visible line.
	Confirmed bool `json:"confirmed"`
}

// Confirmations records which input groups the user has actually supplied.
type Confirmations struct {
	// DistanceSource gates the distance line: only an osrm-confirmed
	// distance unlocks it, a fallback heuristic stays indicative-only.
	DistanceSource routing.Source `json:"distance_source"`

	Density           bool `json:"density"`
	Kitchen           bool `json:"kitchen"`
	Date              bool `json:"date"`
	AccessHousing     bool `json:"access_housing"`
	AccessConstraints bool `json:"access_constraints"`
	Formule           bool `json:"formule"`
}

// Distance reports whether the distance group is confirmed.
func (c Confirmations) Distance() bool {
	return c.DistanceSource == routing.SourceOSRM
}

// Input is one attribution snapshot request.
type Input struct {
	// Request is the currently-known move configuration
	Request move.Request `json:"request"`

	// BaselineDistanceKm is the buffered distance the frozen baseline was
	// priced on; it is the neutral distance of the walk
	BaselineDistanceKm float64 `json:"baseline_distance_km"`

	// Confirmed flags which groups feed their actual value into the walk
	Confirmed Confirmations `json:"confirmed"`
}

// neutralRequest is the walk's starting configuration. It reproduces the
// frozen baseline exactly (including its generic kitchen allowance) so the
// first delta measures only what the user's answer changed.
func neutralRequest(e *pricing.Engine, in Input) move.Request {
	t := e.Tariff()
	distance := in.BaselineDistanceKm
	return move.Request{
		SurfaceM2:           in.Request.SurfaceM2,
		Housing:             in.Request.Housing,
		Density:             move.DensityDense,
		DistanceKm:          &distance,
		OriginElevator:      move.ElevatorYes,
		DestinationElevator: move.ElevatorYes,
		Tier:                move.TierStandard,
		Services:            move.Services{Piano: move.PianoNone},
		ExtraVolumeM3:       float64(t.BaselineApplianceCount) * t.ApplianceVolumeM3,
	}
}

// apply copies group key's actual value from the user request onto the
// running configuration. All later groups remain neutral.
func apply(running *move.Request, user move.Request, key Key) {
	switch key {
	case KeyDistance:
		if user.DistanceKm != nil {
			running.DistanceKm = user.DistanceKm
		}
	case KeyDensity:
		running.Density = user.Density
	case KeyKitchen:
		running.ExtraVolumeM3 = user.ExtraVolumeM3
	case KeyDate:
		running.MovingDate = user.MovingDate
	case KeyAccessHousing:
		running.OriginFloor = user.OriginFloor
		running.DestinationFloor = user.DestinationFloor
		running.OriginElevator = user.OriginElevator
		running.DestinationElevator = user.DestinationElevator
	case KeyAccessConstraints:
		running.Access = user.Access
	case KeyFormule:
		// The formule and its add-on services are chosen together at the
		// end of the funnel, so they move as one group.
		running.Tier = user.Tier
		running.Services = user.Services
	}
}

func confirmed(c Confirmations, key Key) bool {
	switch key {
	case KeyDistance:
		return c.Distance()
	case KeyDensity:
		return c.Density
	case KeyKitchen:
		return c.Kitchen
	case KeyDate:
		return c.Date
	case KeyAccessHousing:
		return c.AccessHousing
	case KeyAccessConstraints:
		return c.AccessConstraints
	case KeyFormule:
		return c.Formule
	default:
		return false
	}
}

// Attribute walks the canonical order from the all-neutral configuration
// and returns one line per group plus the final priced result of the walk.
// A nil result means the configuration is not priceable (the caller shows
// an "estimating" state instead of a breakdown).
//
// Invariant: baselineCenter + sum of line amounts equals the displayed
// center of the returned result, exactly, for every mix of confirmed and
// unconfirmed groups.
func Attribute(e *pricing.Engine, in Input, baselineCenter decimal.Decimal) ([]Line, *pricing.Result) {
	running := neutralRequest(e, in)

	prevCenter := baselineCenter
	var lines []Line
	var last *pricing.Result

	for _, key := range CanonicalOrder() {
		isConfirmed := confirmed(in.Confirmed, key)
		if isConfirmed {
			apply(&running, in.Request, key)
		}

		res := e.Compute(running)
		if res == nil {
			return nil, nil
		}

		center := pricing.DisplayedCenter(res)
		lines = append(lines, Line{
			Key:       key,
			Label:     labels[key],
			Status:    status(in, key, isConfirmed),
			AmountEur: center.Sub(prevCenter),
			Confirmed: isConfirmed,
		})
		prevCenter = center
		last = res
	}

	assertTelescoping(baselineCenter, lines, pricing.DisplayedCenter(last))
	return lines, last
}

// assertTelescoping panics when the exact-sum invariant breaks. The sum is
// exact by construction (decimal arithmetic over a telescoping series), so
// a violation is a programmer error.
func assertTelescoping(baselineCenter decimal.Decimal, lines []Line, finalCenter decimal.Decimal) {
	sum := baselineCenter
	for _, l := range lines {
		sum = sum.Add(l.AmountEur)
	}
	if !sum.Equal(finalCenter) {
		panic(fmt.Sprintf("ATTRIBUTION INVARIANT VIOLATED: baseline %s + deltas = %s, want %s",
			baselineCenter, sum, finalCenter))
	}
}
