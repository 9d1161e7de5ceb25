package move

import (
	"strconv"
	"strings"
)

// The funnel historically shipped loose string flags. These functions map
// every legacy spelling to the closed enums at the boundary so the formulas
// never string-match.

// NormalizeHousing maps a loose housing string to a HousingType.
func NormalizeHousing(s string) (HousingType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "studio", "chambre":
		return HousingStudio, true
	case "t1", "f1", "1p":
		return HousingT1, true
	case "t2", "f2", "2p":
		return HousingT2, true
	case "t3", "f3", "3p":
		return HousingT3, true
	case "t4", "f4", "4p":
		return HousingT4, true
	case "t5", "f5", "5p", "t5+":
		return HousingT5, true
	case "house", "maison", "maison_plain_pied":
		return HousingHouse, true
	case "house_multi", "maison_etage", "maison_etages":
		return HousingHouseMulti, true
	default:
		return "", false
	}
}

// NormalizeDensity maps a loose density string to a Density.
// Unknown values default to dense, the conservative reading.
func NormalizeDensity(s string) Density {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "peu", "peu_meuble", "minimaliste":
		return DensityLight
	case "normal", "normale", "standard":
		return DensityNormal
	case "dense", "tres_meuble", "charge":
		return DensityDense
	default:
		return DensityDense
	}
}

// NormalizeElevator maps a loose elevator string to an Elevator.
// The legacy funnel used "none"/"small"/"partial"/"other"/"" among others;
// absence of information reads as no elevator, the conservative case.
func NormalizeElevator(s string) Elevator {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "oui", "true", "ascenseur":
		return ElevatorYes
	case "partial", "small", "petit", "jusqua_etage":
		return ElevatorPartial
	case "no", "non", "none", "false", "other", "":
		return ElevatorNo
	default:
		return ElevatorNo
	}
}

// NormalizeTier maps a loose formule string to a Tier.
func NormalizeTier(s string) (Tier, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ECONOMIQUE", "ECO", "ECONOMY":
		return TierEconomique, true
	case "STANDARD", "STD":
		return TierStandard, true
	case "PREMIUM", "LUXE":
		return TierPremium, true
	default:
		return "", false
	}
}

// NormalizePiano maps a loose piano string to a Piano.
func NormalizePiano(s string) Piano {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upright", "droit":
		return PianoUpright
	case "grand", "queue", "demi_queue":
		return PianoGrand
	default:
		return PianoNone
	}
}

// CoerceCount parses a user-supplied count, coercing malformed or negative
// input to 0. The funnel never blocks on a bad appliance count.
func CoerceCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
