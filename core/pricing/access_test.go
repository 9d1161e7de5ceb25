package pricing

import (
	"testing"

	"moverz/core/move"
)

func TestFloorCoeff(t *testing.T) {
	e := testEngine()

	cases := []struct {
		name     string
		floor    int
		elevator move.Elevator
		want     float64
	}{
		{"ground floor", 0, move.ElevatorNo, 1.0},
		{"elevator neutralizes floors", 6, move.ElevatorYes, 1.0},
		{"third floor no elevator", 3, move.ElevatorNo, 1.15},
		{"no-elevator cap", 12, move.ElevatorNo, 1.30},
		{"partial elevator", 4, move.ElevatorPartial, 1.10},
		{"partial cap", 10, move.ElevatorPartial, 1.15},
		{"negative floor treated as ground", -2, move.ElevatorNo, 1.0},
	}
	for _, c := range cases {
		nearlyEqual(t, c.name, e.FloorCoeff(c.floor, c.elevator), c.want)
	}
}

func TestEtageCoeffTakesWorstEndpoint(t *testing.T) {
	e := testEngine()

	req := move.Request{
		OriginFloor:         1,
		OriginElevator:      move.ElevatorNo, // 1.05
		DestinationFloor:    4,
		DestinationElevator: move.ElevatorNo, // 1.20
	}
	nearlyEqual(t, "etage", e.EtageCoeff(req), 1.20)
}

func TestAccessCoeffCompounds(t *testing.T) {
	e := testEngine()

	nearlyEqual(t, "none", e.AccessCoeff(move.AccessFlags{}), 1.0)
	nearlyEqual(t, "long carry", e.AccessCoeff(move.AccessFlags{LongCarry: true}), 1.05)
	nearlyEqual(t, "all three",
		e.AccessCoeff(move.AccessFlags{LongCarry: true, TightAccess: true, DifficultParking: true}),
		1.05*1.05*1.03)
}
