package attribution

import (
	"fmt"
	"strings"

	"moverz/core/move"
)

// status renders the human-readable current value of a group.
func status(in Input, key Key, isConfirmed bool) string {
	if !isConfirmed {
		return "En attente"
	}
	req := in.Request
	switch key {
	case KeyDistance:
		if req.DistanceKm == nil {
			return "En attente"
		}
		return fmt.Sprintf("%.0f km", *req.DistanceKm)
	case KeyDensity:
		return densityStatus(req.Density)
	case KeyKitchen:
		if req.ExtraVolumeM3 <= 0 {
			return "Sans électroménager"
		}
		return fmt.Sprintf("+%.1f m³ d'électroménager", req.ExtraVolumeM3)
	case KeyDate:
		if req.MovingDate == nil {
			return "En attente"
		}
		return req.MovingDate.Format("02/01/2006")
	case KeyAccessHousing:
		return floorsStatus(req)
	case KeyAccessConstraints:
		return constraintsStatus(req.Access)
	case KeyFormule:
		return tierStatus(req.Tier)
	default:
		return ""
	}
}

func tierStatus(t move.Tier) string {
	switch t {
	case move.TierEconomique:
		return "Formule économique"
	case move.TierPremium:
		return "Formule premium"
	default:
		return "Formule standard"
	}
}

func densityStatus(d move.Density) string {
	switch d {
	case move.DensityLight:
		return "Logement peu meublé"
	case move.DensityNormal:
		return "Logement normalement meublé"
	default:
		return "Logement très meublé"
	}
}

func floorsStatus(req move.Request) string {
	origin := endpointStatus(req.OriginFloor, req.OriginElevator)
	destination := endpointStatus(req.DestinationFloor, req.DestinationElevator)
	return fmt.Sprintf("Départ %s, arrivée %s", origin, destination)
}

func endpointStatus(floor int, elevator move.Elevator) string {
	if floor <= 0 {
		return "rez-de-chaussée"
	}
	switch elevator {
	case move.ElevatorYes:
		return fmt.Sprintf("étage %d avec ascenseur", floor)
	case move.ElevatorPartial:
		return fmt.Sprintf("étage %d, ascenseur partiel", floor)
	default:
		return fmt.Sprintf("étage %d sans ascenseur", floor)
	}
}

func constraintsStatus(flags move.AccessFlags) string {
	if !flags.Any() {
		return "Accès standard"
	}
	var parts []string
	if flags.LongCarry {
		parts = append(parts, "portage long")
	}
	if flags.TightAccess {
		parts = append(parts, "accès étroit")
	}
	if flags.DifficultParking {
		parts = append(parts, "stationnement difficile")
	}
	return strings.Join(parts, ", ")
}
