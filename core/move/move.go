// Package move defines the immutable move description fed to the pricing
// engine. This package contains NO business logic - only type definitions
// and boundary normalization.
package move

import "time"

// HousingType classifies the dwelling being moved.
type HousingType string

const (
	HousingStudio     HousingType = "studio"
	HousingT1         HousingType = "t1"
	HousingT2         HousingType = "t2"
	HousingT3         HousingType = "t3"
	HousingT4         HousingType = "t4"
	HousingT5         HousingType = "t5"
	HousingHouse      HousingType = "house"
	HousingHouseMulti HousingType = "house_multi"
)

// String returns the string representation
func (h HousingType) String() string {
	return string(h)
}

// IsValid checks if the housing type is known
func (h HousingType) IsValid() bool {
	switch h {
	case HousingStudio, HousingT1, HousingT2, HousingT3, HousingT4, HousingT5, HousingHouse, HousingHouseMulti:
		return true
	default:
		return false
	}
}

// Density classifies how furnished the dwelling is.
type Density string

const (
	DensityLight  Density = "light"
	DensityNormal Density = "normal"
	DensityDense  Density = "dense"
)

// String returns the string representation
func (d Density) String() string {
	return string(d)
}

// IsValid checks if the density is known
func (d Density) IsValid() bool {
	switch d {
	case DensityLight, DensityNormal, DensityDense:
		return true
	default:
		return false
	}
}

// Elevator describes elevator availability at one endpoint.
type Elevator string

const (
	ElevatorYes     Elevator = "yes"
	ElevatorNo      Elevator = "no"
	ElevatorPartial Elevator = "partial"
)

// String returns the string representation
func (e Elevator) String() string {
	return string(e)
}

// IsValid checks if the elevator state is known
func (e Elevator) IsValid() bool {
	switch e {
	case ElevatorYes, ElevatorNo, ElevatorPartial:
		return true
	default:
		return false
	}
}

// Tier is the service tier (the "formule").
type Tier string

const (
	TierEconomique Tier = "ECONOMIQUE"
	TierStandard   Tier = "STANDARD"
	TierPremium    Tier = "PREMIUM"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is known
func (t Tier) IsValid() bool {
	switch t {
	case TierEconomique, TierStandard, TierPremium:
		return true
	default:
		return false
	}
}

// AllTiers lists every tier in display order.
func AllTiers() []Tier {
	return []Tier{TierEconomique, TierStandard, TierPremium}
}

// Piano is the piano transport option.
type Piano string

const (
	PianoNone    Piano = "none"
	PianoUpright Piano = "upright"
	PianoGrand   Piano = "grand"
)

// String returns the string representation
func (p Piano) String() string {
	return string(p)
}

// IsValid checks if the piano kind is known
func (p Piano) IsValid() bool {
	switch p {
	case PianoNone, PianoUpright, PianoGrand:
		return true
	default:
		return false
	}
}

// Services holds the selected add-on services.
type Services struct {
	// FurnitureLift requests a furniture lift ("monte-meuble")
	FurnitureLift bool `json:"furniture_lift"`

	// Piano is the piano transport option
	Piano Piano `json:"piano"`

	// Debarras requests debris removal
	Debarras bool `json:"debarras"`
}

// AccessFlags holds the access constraint flags.
type AccessFlags struct {
	// LongCarry indicates a long carry between truck and door
	LongCarry bool `json:"long_carry"`

	// TightAccess indicates narrow stairs or corridors
	TightAccess bool `json:"tight_access"`

	// DifficultParking indicates the truck cannot park near the entrance
	DifficultParking bool `json:"difficult_parking"`
}

// Any reports whether at least one constraint is set.
func (a AccessFlags) Any() bool {
	return a.LongCarry || a.TightAccess || a.DifficultParking
}

// Request is one complete move description. It is rebuilt from caller state
// on every recompute; the engine never mutates it.
type Request struct {
	// SurfaceM2 is the dwelling surface, valid in [10,500]
	SurfaceM2 float64 `json:"surface_m2"`

	// Housing is the dwelling type
	Housing HousingType `json:"housing"`

	// Density is the furnishing density
	Density Density `json:"density"`

	// DistanceKm is the routed distance; nil means not priceable yet
	DistanceKm *float64 `json:"distance_km,omitempty"`

	// MovingDate is the planned date; nil means unknown (season neutral)
	MovingDate *time.Time `json:"moving_date,omitempty"`

	// OriginFloor and DestinationFloor are endpoint floor counts, >= 0
	OriginFloor      int `json:"origin_floor"`
	DestinationFloor int `json:"destination_floor"`

	// OriginElevator and DestinationElevator are endpoint elevator states
	OriginElevator      Elevator `json:"origin_elevator"`
	DestinationElevator Elevator `json:"destination_elevator"`

	// Tier is the selected formule
	Tier Tier `json:"tier"`

	// Services are the selected add-ons
	Services Services `json:"services"`

	// Access are the constraint flags
	Access AccessFlags `json:"access"`

	// ExtraVolumeM3 is additional volume (kitchen appliances), >= 0
	ExtraVolumeM3 float64 `json:"extra_volume_m3"`
}

// WithDistance returns a copy with the distance set.
func (r Request) WithDistance(km float64) Request {
	r.DistanceKm = &km
	return r
}

// WithDate returns a copy with the moving date set.
func (r Request) WithDate(d time.Time) Request {
	r.MovingDate = &d
	return r
}
