package pricing

import (
	"math"

	"moverz/core/move"
)

// FloorCoeff returns the difficulty multiplier for one endpoint. It is
// neutral at floor 0 or with a working elevator, climbs per floor without
// one, and takes an intermediate slope for partial elevator access. Both
// slopes are capped.
func (e *Engine) FloorCoeff(floor int, elevator move.Elevator) float64 {
	if floor <= 0 || elevator == move.ElevatorYes {
		return 1
	}
	switch elevator {
	case move.ElevatorPartial:
		return math.Min(1+e.tariff.FloorPartialPerFloor*float64(floor), e.tariff.FloorPartialCap)
	default:
		return math.Min(1+e.tariff.FloorNoElevatorPerFloor*float64(floor), e.tariff.FloorNoElevatorCap)
	}
}

// EtageCoeff returns the floor coefficient of the harder endpoint. The
// crew's day is paced by the worst access, so the endpoints are not
// averaged.
func (e *Engine) EtageCoeff(req move.Request) float64 {
	origin := e.FloorCoeff(req.OriginFloor, req.OriginElevator)
	destination := e.FloorCoeff(req.DestinationFloor, req.DestinationElevator)
	return math.Max(origin, destination)
}

// AccessCoeff returns the product of the constraint multipliers, each
// applied only when its flag is set. Stacked constraints compound.
func (e *Engine) AccessCoeff(flags move.AccessFlags) float64 {
	coeff := 1.0
	if flags.LongCarry {
		coeff *= e.tariff.LongCarryCoeff
	}
	if flags.TightAccess {
		coeff *= e.tariff.TightAccessCoeff
	}
	if flags.DifficultParking {
		coeff *= e.tariff.DifficultParkingCoeff
	}
	return coeff
}
