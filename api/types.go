// Package api - thin, deterministic HTTP layer.
// The API is ONLY responsible for input ingestion, engine orchestration
// and output serialization. It NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"moverz/core/attribution"
	"moverz/core/baseline"
	"moverz/core/move"
	"moverz/core/routing"
	"moverz/core/tariff"
	"moverz/internal/errors"
)

// QuoteRequest is the wire form of one move description. Enum fields
// arrive as loose strings and are normalized at this boundary.
type QuoteRequest struct {
	SurfaceM2  float64  `json:"surface_m2"`
	Housing    string   `json:"housing"`
	Density    string   `json:"density"`
	DistanceKm *float64 `json:"distance_km,omitempty"`

	// MovingDate is "2006-01-02"; empty means unknown
	MovingDate string `json:"moving_date,omitempty"`

	OriginFloor         int    `json:"origin_floor"`
	DestinationFloor    int    `json:"destination_floor"`
	OriginElevator      string `json:"origin_elevator"`
	DestinationElevator string `json:"destination_elevator"`

	Tier string `json:"tier"`

	FurnitureLift bool   `json:"furniture_lift"`
	Piano         string `json:"piano"`
	Debarras      bool   `json:"debarras"`

	LongCarry        bool `json:"long_carry"`
	TightAccess      bool `json:"tight_access"`
	DifficultParking bool `json:"difficult_parking"`

	// ApplianceCount is deliberately a string: the funnel never blocks on
	// a malformed count, it coerces to zero
	ApplianceCount string  `json:"appliance_count,omitempty"`
	ExtraVolumeM3  float64 `json:"extra_volume_m3,omitempty"`
}

// ToMove normalizes the wire request into the engine's closed-enum form.
func (q QuoteRequest) ToMove(t *tariff.Tariff) (move.Request, error) {
	housing, ok := move.NormalizeHousing(q.Housing)
	if !ok {
		return move.Request{}, errors.Newf(errors.TypeInput, "unknown housing type %q", q.Housing)
	}

	tier := move.TierStandard
	if q.Tier != "" {
		normalized, ok := move.NormalizeTier(q.Tier)
		if !ok {
			return move.Request{}, errors.Newf(errors.TypeInput, "unknown tier %q", q.Tier)
		}
		tier = normalized
	}

	req := move.Request{
		SurfaceM2:           q.SurfaceM2,
		Housing:             housing,
		Density:             move.NormalizeDensity(q.Density),
		DistanceKm:          q.DistanceKm,
		OriginFloor:         q.OriginFloor,
		DestinationFloor:    q.DestinationFloor,
		OriginElevator:      move.NormalizeElevator(q.OriginElevator),
		DestinationElevator: move.NormalizeElevator(q.DestinationElevator),
		Tier:                tier,
		Services: move.Services{
			FurnitureLift: q.FurnitureLift,
			Piano:         move.NormalizePiano(q.Piano),
			Debarras:      q.Debarras,
		},
		Access: move.AccessFlags{
			LongCarry:        q.LongCarry,
			TightAccess:      q.TightAccess,
			DifficultParking: q.DifficultParking,
		},
		ExtraVolumeM3: q.ExtraVolumeM3 + float64(move.CoerceCount(q.ApplianceCount))*t.ApplianceVolumeM3,
	}

	if q.MovingDate != "" {
		date, err := time.Parse("2006-01-02", q.MovingDate)
		if err != nil {
			// Garbage dates stay neutral rather than blocking the funnel.
			return req, nil
		}
		req.MovingDate = &date
	}
	return req, nil
}

// TierQuoteDTO is one per-tier row on the wire.
type TierQuoteDTO struct {
	Tier   string          `json:"tier"`
	Min    decimal.Decimal `json:"min"`
	Final  decimal.Decimal `json:"final"`
	Max    decimal.Decimal `json:"max"`
	FeeEur decimal.Decimal `json:"fee_eur"`
}

// QuoteResponse is the priced answer for one request.
type QuoteResponse struct {
	VolumeM3      float64         `json:"volume_m3"`
	PriceMin      decimal.Decimal `json:"price_min"`
	PriceFinal    decimal.Decimal `json:"price_final"`
	PriceMax      decimal.Decimal `json:"price_max"`
	ServicesTotal decimal.Decimal `json:"services_total"`
	FeeEur        decimal.Decimal `json:"fee_eur"`
	PerTier       []TierQuoteDTO  `json:"per_tier"`
	TariffVersion string          `json:"tariff_version"`
}

// BaselineRequest asks for the frozen first estimate.
type BaselineRequest struct {
	SurfaceM2      float64 `json:"surface_m2"`
	Housing        string  `json:"housing"`
	CityDistanceKm float64 `json:"city_distance_km"`
	Tier           string  `json:"tier,omitempty"`
}

// SnapshotRequest asks for the attribution snapshot between a frozen
// baseline and the current configuration.
type SnapshotRequest struct {
	Quote    QuoteRequest     `json:"quote"`
	Baseline *baseline.Frozen `json:"baseline"`

	DistanceSource   string `json:"distance_source,omitempty"`
	DensityConfirmed bool   `json:"density_confirmed"`
	KitchenConfirmed bool   `json:"kitchen_confirmed"`
	DateConfirmed    bool   `json:"date_confirmed"`
	HousingConfirmed bool   `json:"housing_access_confirmed"`
	AccessConfirmed  bool   `json:"access_constraints_confirmed"`
	FormuleConfirmed bool   `json:"formule_confirmed"`
}

// Confirmations maps the wire flags onto the attribution form.
func (s SnapshotRequest) Confirmations() attribution.Confirmations {
	return attribution.Confirmations{
		DistanceSource:    routing.Source(s.DistanceSource),
		Density:           s.DensityConfirmed,
		Kitchen:           s.KitchenConfirmed,
		Date:              s.DateConfirmed,
		AccessHousing:     s.HousingConfirmed,
		AccessConstraints: s.AccessConfirmed,
		Formule:           s.FormuleConfirmed,
	}
}

// DistanceRequest asks for a routed distance between two points.
type DistanceRequest struct {
	Origin      routing.Coordinate `json:"origin"`
	Destination routing.Coordinate `json:"destination"`
}

// LeadRequest attaches an opaque snapshot to a lead.
type LeadRequest struct {
	ContactEmail string          `json:"contact_email"`
	Snapshot     json.RawMessage `json:"snapshot"`
}

// errorResponse is the uniform error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
