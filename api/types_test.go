package api

import (
	"testing"
	"time"

	"moverz/core/move"
	"moverz/core/tariff"
	"moverz/internal/errors"
)

func TestToMoveNormalizes(t *testing.T) {
	tf := tariff.Default()
	dist := 120.0
	wire := QuoteRequest{
		SurfaceM2:           60,
		Housing:             "F2",
		Density:             "normale",
		DistanceKm:          &dist,
		MovingDate:          "2026-07-10",
		OriginFloor:         3,
		OriginElevator:      "none",
		DestinationElevator: "oui",
		Tier:                "eco",
		Piano:               "droit",
		ApplianceCount:      "2",
		ExtraVolumeM3:       0.5,
	}

	req, err := wire.ToMove(tf)
	if err != nil {
		t.Fatalf("to move: %v", err)
	}
	if req.Housing != move.HousingT2 {
		t.Fatalf("housing = %s", req.Housing)
	}
	if req.Density != move.DensityNormal {
		t.Fatalf("density = %s", req.Density)
	}
	if req.OriginElevator != move.ElevatorNo || req.DestinationElevator != move.ElevatorYes {
		t.Fatal("elevator normalization wrong")
	}
	if req.Tier != move.TierEconomique {
		t.Fatalf("tier = %s", req.Tier)
	}
	if req.Services.Piano != move.PianoUpright {
		t.Fatalf("piano = %s", req.Services.Piano)
	}
	// 0.5 explicit + 2 appliances at 0.6
	if req.ExtraVolumeM3 != 1.7 {
		t.Fatalf("extra volume = %v", req.ExtraVolumeM3)
	}
	want := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	if req.MovingDate == nil || !req.MovingDate.Equal(want) {
		t.Fatalf("moving date = %v", req.MovingDate)
	}
}

func TestToMoveDefaultsTierToStandard(t *testing.T) {
	req, err := QuoteRequest{SurfaceM2: 60, Housing: "t2"}.ToMove(tariff.Default())
	if err != nil {
		t.Fatalf("to move: %v", err)
	}
	if req.Tier != move.TierStandard {
		t.Fatalf("tier = %s", req.Tier)
	}
}

func TestToMoveGarbageStaysNonBlocking(t *testing.T) {
	wire := QuoteRequest{
		SurfaceM2:      60,
		Housing:        "t2",
		MovingDate:     "sometime in july",
		ApplianceCount: "two",
	}
	req, err := wire.ToMove(tariff.Default())
	if err != nil {
		t.Fatalf("garbage date and count must not block: %v", err)
	}
	if req.MovingDate != nil {
		t.Fatal("garbage date should stay neutral")
	}
	if req.ExtraVolumeM3 != 0 {
		t.Fatalf("garbage count should coerce to zero, got %v", req.ExtraVolumeM3)
	}
}

func TestToMoveRejectsUnknownEnums(t *testing.T) {
	if _, err := (QuoteRequest{Housing: "igloo"}).ToMove(tariff.Default()); !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("unknown housing: got %v", err)
	}
	if _, err := (QuoteRequest{Housing: "t2", Tier: "deluxe"}).ToMove(tariff.Default()); !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("unknown tier: got %v", err)
	}
}
