package tariff

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"moverz/core/move"
	"moverz/internal/errors"
)

// The on-disk tariff is HCL so business teams can version and review it
// like any other configuration. The file mirrors the Tariff struct through
// the hcl* types below.

type hclTariff struct {
	Version  string       `hcl:"version"`
	Volume   *hclVolume   `hcl:"volume,block"`
	Distance *hclDistance `hcl:"distance,block"`
	Pricing  *hclPricing  `hcl:"pricing,block"`
	Access   *hclAccess   `hcl:"access,block"`
	Season   *hclSeason   `hcl:"season,block"`
	Services *hclServices `hcl:"services,block"`
	Baseline *hclBaseline `hcl:"baseline,block"`
	Fee      *hclFee      `hcl:"fee,block"`
}

type hclVolume struct {
	HousingCoeff      map[string]float64 `hcl:"housing_coeff"`
	DensityCoeff      map[string]float64 `hcl:"density_coeff"`
	ApplianceVolumeM3 float64            `hcl:"appliance_volume_m3"`
}

type hclDistance struct {
	CoeffPerKm float64   `hcl:"coeff_per_km"`
	Bands      []hclBand `hcl:"band,block"`
}

type hclBand struct {
	UpToKm     float64 `hcl:"up_to_km"`
	Economique float64 `hcl:"economique"`
	Standard   float64 `hcl:"standard"`
	Premium    float64 `hcl:"premium"`
}

type hclPricing struct {
	Decote    float64        `hcl:"decote"`
	SocleEur  float64        `hcl:"socle_eur"`
	SpreadPct float64        `hcl:"spread_pct"`
	Scale     []hclScaleTier `hcl:"scale,block"`
}

type hclScaleTier struct {
	UpToM3 float64 `hcl:"up_to_m3"`
	Factor float64 `hcl:"factor"`
}

type hclAccess struct {
	NoElevatorPerFloor float64 `hcl:"no_elevator_per_floor"`
	NoElevatorCap      float64 `hcl:"no_elevator_cap"`
	PartialPerFloor    float64 `hcl:"partial_per_floor"`
	PartialCap         float64 `hcl:"partial_cap"`
	LongCarry          float64 `hcl:"long_carry"`
	TightAccess        float64 `hcl:"tight_access"`
	DifficultParking   float64 `hcl:"difficult_parking"`
}

type hclSeason struct {
	PeakMonths     []int   `hcl:"peak_months"`
	OffPeakMonths  []int   `hcl:"off_peak_months"`
	PeakFactor     float64 `hcl:"peak_factor"`
	OffPeakFactor  float64 `hcl:"off_peak_factor"`
	UrgencyFactor  float64 `hcl:"urgency_factor"`
	UrgencyMaxDays int     `hcl:"urgency_max_days"`
}

type hclServices struct {
	FurnitureLiftEur float64 `hcl:"furniture_lift_eur"`
	PianoUprightEur  float64 `hcl:"piano_upright_eur"`
	PianoGrandEur    float64 `hcl:"piano_grand_eur"`
	DebarrasFlatEur  float64 `hcl:"debarras_flat_eur"`
	DebarrasPerM3Eur float64 `hcl:"debarras_per_m3_eur"`
}

type hclBaseline struct {
	BufferKm       float64 `hcl:"buffer_km"`
	ApplianceCount int     `hcl:"appliance_count"`
}

type hclFee struct {
	MinEur float64 `hcl:"min_eur"`
	Rate   float64 `hcl:"rate"`
}

// LoadHCL reads and validates a tariff file.
func LoadHCL(path string) (*Tariff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Tariff("read tariff file", err)
	}
	return LoadHCLBytes(data, path)
}

// LoadHCLBytes parses and validates tariff HCL source.
func LoadHCLBytes(src []byte, filename string) (*Tariff, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Tariff("parse tariff HCL", diags)
	}

	var raw hclTariff
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Tariff("decode tariff HCL", diags)
	}

	t, err := raw.toTariff()
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (h *hclTariff) toTariff() (*Tariff, error) {
	for name, block := range map[string]interface{}{
		"volume":   h.Volume,
		"distance": h.Distance,
		"pricing":  h.Pricing,
		"access":   h.Access,
		"season":   h.Season,
		"services": h.Services,
		"baseline": h.Baseline,
		"fee":      h.Fee,
	} {
		if isNilBlock(block) {
			return nil, errors.Newf(errors.TypeTariff, "missing %q block", name)
		}
	}

	t := &Tariff{
		Version:                 h.Version,
		HousingCoeff:            make(map[move.HousingType]float64, len(h.Volume.HousingCoeff)),
		DensityCoeff:            make(map[move.Density]float64, len(h.Volume.DensityCoeff)),
		ApplianceVolumeM3:       h.Volume.ApplianceVolumeM3,
		DistanceCoeffPerKm:      h.Distance.CoeffPerKm,
		Decote:                  h.Pricing.Decote,
		SocleEur:                h.Pricing.SocleEur,
		SpreadPct:               h.Pricing.SpreadPct,
		FloorNoElevatorPerFloor: h.Access.NoElevatorPerFloor,
		FloorNoElevatorCap:      h.Access.NoElevatorCap,
		FloorPartialPerFloor:    h.Access.PartialPerFloor,
		FloorPartialCap:         h.Access.PartialCap,
		LongCarryCoeff:          h.Access.LongCarry,
		TightAccessCoeff:        h.Access.TightAccess,
		DifficultParkingCoeff:   h.Access.DifficultParking,
		PeakMonths:              h.Season.PeakMonths,
		OffPeakMonths:           h.Season.OffPeakMonths,
		PeakMonthFactor:         h.Season.PeakFactor,
		OffPeakMonthFactor:      h.Season.OffPeakFactor,
		UrgencyFactor:           h.Season.UrgencyFactor,
		UrgencyMaxDays:          h.Season.UrgencyMaxDays,
		FurnitureLiftEur:        h.Services.FurnitureLiftEur,
		PianoUprightEur:         h.Services.PianoUprightEur,
		PianoGrandEur:           h.Services.PianoGrandEur,
		DebarrasFlatEur:         h.Services.DebarrasFlatEur,
		DebarrasPerM3Eur:        h.Services.DebarrasPerM3Eur,
		BaselineBufferKm:        h.Baseline.BufferKm,
		BaselineApplianceCount:  h.Baseline.ApplianceCount,
		FeeMinEur:               h.Fee.MinEur,
		FeeRate:                 h.Fee.Rate,
	}

	for k, v := range h.Volume.HousingCoeff {
		housing, ok := move.NormalizeHousing(k)
		if !ok {
			return nil, errors.Newf(errors.TypeTariff, "unknown housing type %q", k)
		}
		t.HousingCoeff[housing] = v
	}
	for k, v := range h.Volume.DensityCoeff {
		d := move.Density(k)
		if !d.IsValid() {
			return nil, errors.Newf(errors.TypeTariff, "unknown density %q", k)
		}
		t.DensityCoeff[d] = v
	}

	for _, b := range h.Distance.Bands {
		t.Bands = append(t.Bands, Band{
			UpToKm: b.UpToKm,
			Rates:  Rates{Economique: b.Economique, Standard: b.Standard, Premium: b.Premium},
		})
	}
	for _, s := range h.Pricing.Scale {
		t.Scale = append(t.Scale, ScaleTier{UpToM3: s.UpToM3, Factor: s.Factor})
	}

	return t, nil
}

func isNilBlock(v interface{}) bool {
	switch b := v.(type) {
	case *hclVolume:
		return b == nil
	case *hclDistance:
		return b == nil
	case *hclPricing:
		return b == nil
	case *hclAccess:
		return b == nil
	case *hclSeason:
		return b == nil
	case *hclBaseline:
		return b == nil
	case *hclServices:
		return b == nil
	case *hclFee:
		return b == nil
	default:
		return v == nil
	}
}
