// Package tariff holds the versioned business parameters of the pricing
// model. The numbers here are business-team decisions, not algorithmic
// content: the engine reads them, it never hard-codes them.
package tariff

import (
	"moverz/core/move"
	"moverz/internal/errors"
)

// Rates is one rate row, in euros per m3, one column per formule.
type Rates struct {
	Economique float64 `json:"economique"`
	Standard   float64 `json:"standard"`
	Premium    float64 `json:"premium"`
}

// For returns the rate for a tier.
func (r Rates) For(t move.Tier) float64 {
	switch t {
	case move.TierEconomique:
		return r.Economique
	case move.TierPremium:
		return r.Premium
	default:
		return r.Standard
	}
}

// Band is one distance bucket. UpToKm == 0 marks the unbounded last band.
type Band struct {
	UpToKm float64 `json:"up_to_km"`
	Rates  Rates   `json:"rates"`
}

// ScaleTier is one step of the volume economy-of-scale ladder.
// UpToM3 == 0 marks the unbounded last step; Factor never increases down
// the ladder and the last step is the floor.
type ScaleTier struct {
	UpToM3 float64 `json:"up_to_m3"`
	Factor float64 `json:"factor"`
}

// Tariff is a complete versioned parameter set.
type Tariff struct {
	Version string `json:"version"`

	// Volume model
	HousingCoeff      map[move.HousingType]float64 `json:"housing_coeff"`
	DensityCoeff      map[move.Density]float64     `json:"density_coeff"`
	ApplianceVolumeM3 float64                      `json:"appliance_volume_m3"`

	// Distance bands and rates
	Bands              []Band  `json:"bands"`
	DistanceCoeffPerKm float64 `json:"distance_coeff_per_km"`

	// Decote applies only to variable costs (volume rate, per-km coefficient),
	// never to the socle or to service add-ons. Negative means a discount.
	Decote float64 `json:"decote"`

	// SocleEur is the absolute minimum billable base before distance cost.
	SocleEur float64 `json:"socle_eur"`

	// SpreadPct is the symmetric uncertainty band around the final price.
	SpreadPct float64 `json:"spread_pct"`

	// Scale is the volume economy-of-scale ladder.
	Scale []ScaleTier `json:"scale"`

	// Floor access coefficients
	FloorNoElevatorPerFloor float64 `json:"floor_no_elevator_per_floor"`
	FloorNoElevatorCap      float64 `json:"floor_no_elevator_cap"`
	FloorPartialPerFloor    float64 `json:"floor_partial_per_floor"`
	FloorPartialCap         float64 `json:"floor_partial_cap"`

	// Access constraint multipliers
	LongCarryCoeff        float64 `json:"long_carry_coeff"`
	TightAccessCoeff      float64 `json:"tight_access_coeff"`
	DifficultParkingCoeff float64 `json:"difficult_parking_coeff"`

	// Seasonality
	PeakMonths         []int   `json:"peak_months"`
	OffPeakMonths      []int   `json:"off_peak_months"`
	PeakMonthFactor    float64 `json:"peak_month_factor"`
	OffPeakMonthFactor float64 `json:"off_peak_month_factor"`
	UrgencyFactor      float64 `json:"urgency_factor"`
	UrgencyMaxDays     int     `json:"urgency_max_days"`

	// Service add-ons, priced at face value
	FurnitureLiftEur float64 `json:"furniture_lift_eur"`
	PianoUprightEur  float64 `json:"piano_upright_eur"`
	PianoGrandEur    float64 `json:"piano_grand_eur"`
	DebarrasFlatEur  float64 `json:"debarras_flat_eur"`
	DebarrasPerM3Eur float64 `json:"debarras_per_m3_eur"`

	// Baseline estimator defaults
	BaselineBufferKm       float64 `json:"baseline_buffer_km"`
	BaselineApplianceCount int     `json:"baseline_appliance_count"`

	// Platform fee provision
	FeeMinEur float64 `json:"fee_min_eur"`
	FeeRate   float64 `json:"fee_rate"`
}

// Default returns the pinned parameter set. Regression fixtures anchor on
// these values; changing any of them is a tariff version bump.
func Default() *Tariff {
	return &Tariff{
		Version: "2025-07",
		HousingCoeff: map[move.HousingType]float64{
			move.HousingStudio:     0.30,
			move.HousingT1:         0.35,
			move.HousingT2:         0.40,
			move.HousingT3:         0.45,
			move.HousingT4:         0.50,
			move.HousingT5:         0.55,
			move.HousingHouse:      0.60,
			move.HousingHouseMulti: 0.65,
		},
		DensityCoeff: map[move.Density]float64{
			move.DensityLight:  0.85,
			move.DensityNormal: 1.00,
			move.DensityDense:  1.15,
		},
		ApplianceVolumeM3: 0.6,
		Bands: []Band{
			{UpToKm: 50, Rates: Rates{Economique: 28, Standard: 35, Premium: 45}},
			{UpToKm: 150, Rates: Rates{Economique: 33, Standard: 41, Premium: 52}},
			{UpToKm: 350, Rates: Rates{Economique: 38, Standard: 48, Premium: 60}},
			{UpToKm: 700, Rates: Rates{Economique: 45, Standard: 56, Premium: 70}},
			{UpToKm: 0, Rates: Rates{Economique: 52, Standard: 65, Premium: 82}},
		},
		DistanceCoeffPerKm: 1.5,
		Decote:             -0.10,
		SocleEur:           350,
		SpreadPct:          0.12,
		Scale: []ScaleTier{
			{UpToM3: 20, Factor: 1.00},
			{UpToM3: 35, Factor: 0.97},
			{UpToM3: 50, Factor: 0.94},
			{UpToM3: 0, Factor: 0.90},
		},
		FloorNoElevatorPerFloor: 0.05,
		FloorNoElevatorCap:      1.30,
		FloorPartialPerFloor:    0.025,
		FloorPartialCap:         1.15,
		LongCarryCoeff:          1.05,
		TightAccessCoeff:        1.05,
		DifficultParkingCoeff:   1.03,
		PeakMonths:              []int{6, 7, 8, 9, 12},
		OffPeakMonths:           []int{1, 2, 11},
		PeakMonthFactor:         1.30,
		OffPeakMonthFactor:      0.85,
		UrgencyFactor:           1.15,
		UrgencyMaxDays:          15,
		FurnitureLiftEur:        250,
		PianoUprightEur:         180,
		PianoGrandEur:           320,
		DebarrasFlatEur:         90,
		DebarrasPerM3Eur:        15,
		BaselineBufferKm:        15,
		BaselineApplianceCount:  3,
		FeeMinEur:               100,
		FeeRate:                 0.10,
	}
}

// Validate checks the structural invariants of a tariff.
func (t *Tariff) Validate() error {
	if t.Version == "" {
		return errors.New(errors.TypeTariff, "tariff version is required")
	}
	if len(t.Bands) == 0 {
		return errors.New(errors.TypeTariff, "at least one distance band is required")
	}
	prev := 0.0
	for i, b := range t.Bands {
		last := i == len(t.Bands)-1
		if last {
			if b.UpToKm != 0 {
				return errors.New(errors.TypeTariff, "last distance band must be unbounded (up_to_km = 0)")
			}
		} else {
			if b.UpToKm <= prev {
				return errors.Newf(errors.TypeTariff, "distance band %d is not strictly increasing", i)
			}
			prev = b.UpToKm
		}
		if b.Rates.Economique <= 0 || b.Rates.Standard <= 0 || b.Rates.Premium <= 0 {
			return errors.Newf(errors.TypeTariff, "distance band %d has a non-positive rate", i)
		}
	}
	if len(t.Scale) == 0 {
		return errors.New(errors.TypeTariff, "at least one scale tier is required")
	}
	prevFactor := t.Scale[0].Factor
	for i, s := range t.Scale {
		if s.Factor <= 0 || s.Factor > 1 {
			return errors.Newf(errors.TypeTariff, "scale tier %d factor must be in (0,1]", i)
		}
		if s.Factor > prevFactor {
			return errors.Newf(errors.TypeTariff, "scale tier %d factor increases", i)
		}
		prevFactor = s.Factor
		if i == len(t.Scale)-1 && s.UpToM3 != 0 {
			return errors.New(errors.TypeTariff, "last scale tier must be unbounded (up_to_m3 = 0)")
		}
	}
	if t.SpreadPct < 0 {
		return errors.New(errors.TypeTariff, "spread_pct must be >= 0")
	}
	if t.Decote <= -1 {
		return errors.New(errors.TypeTariff, "decote must be > -1")
	}
	if t.SocleEur < 0 {
		return errors.New(errors.TypeTariff, "socle_eur must be >= 0")
	}
	for _, h := range []move.HousingType{
		move.HousingStudio, move.HousingT1, move.HousingT2, move.HousingT3,
		move.HousingT4, move.HousingT5, move.HousingHouse, move.HousingHouseMulti,
	} {
		if t.HousingCoeff[h] <= 0 {
			return errors.Newf(errors.TypeTariff, "missing housing coefficient for %s", h)
		}
	}
	for _, d := range []move.Density{move.DensityLight, move.DensityNormal, move.DensityDense} {
		if t.DensityCoeff[d] <= 0 {
			return errors.Newf(errors.TypeTariff, "missing density coefficient for %s", d)
		}
	}
	if t.FeeRate < 0 || t.FeeMinEur < 0 {
		return errors.New(errors.TypeTariff, "fee parameters must be >= 0")
	}
	return nil
}
