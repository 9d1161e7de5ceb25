package pricing

import (
	"math"
	"testing"
	"time"

	"moverz/core/move"
	"moverz/core/tariff"
)

func testEngine() *Engine {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewEngineAt(tariff.Default(), func() time.Time { return now })
}

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// Regression anchor for the pinned coefficient table: 60 m2 t2, dense,
// 1.8 m3 of appliances.
func TestVolumeFixture(t *testing.T) {
	e := testEngine()

	got, ok := e.Volume(60, move.HousingT2, move.DensityDense, 1.8)
	if !ok {
		t.Fatal("expected fixture to be priceable")
	}
	nearlyEqual(t, "volume", got, 29.4)
}

func TestVolumeRoundsToOneDecimal(t *testing.T) {
	e := testEngine()

	// 10 * 0.30 * 1.00 + 0.07 = 3.07 -> 3.1
	up, ok := e.Volume(10, move.HousingStudio, move.DensityNormal, 0.07)
	if !ok {
		t.Fatal("expected priceable")
	}
	nearlyEqual(t, "volume", up, 3.1)

	// 3.01 -> 3.0
	down, _ := e.Volume(10, move.HousingStudio, move.DensityNormal, 0.01)
	nearlyEqual(t, "volume", down, 3.0)
}

func TestVolumeSurfaceOutOfRange(t *testing.T) {
	e := testEngine()

	for _, surface := range []float64{0, 9.9, 500.1, 10000, -5} {
		if _, ok := e.Volume(surface, move.HousingT2, move.DensityNormal, 0); ok {
			t.Fatalf("surface %v should not be priceable", surface)
		}
	}
	for _, surface := range []float64{10, 500} {
		if _, ok := e.Volume(surface, move.HousingT2, move.DensityNormal, 0); !ok {
			t.Fatalf("surface %v should be priceable", surface)
		}
	}
}

func TestVolumeMonotonicInSurface(t *testing.T) {
	e := testEngine()

	prev := 0.0
	for surface := 10.0; surface <= 500; surface += 7.3 {
		v, ok := e.Volume(surface, move.HousingT3, move.DensityNormal, 0)
		if !ok {
			t.Fatalf("surface %v should be priceable", surface)
		}
		if v < prev {
			t.Fatalf("volume decreased at surface %v: %v < %v", surface, v, prev)
		}
		prev = v
	}
}

func TestVolumeNegativeExtraCoercedToZero(t *testing.T) {
	e := testEngine()

	withExtra, _ := e.Volume(60, move.HousingT2, move.DensityNormal, -10)
	without, _ := e.Volume(60, move.HousingT2, move.DensityNormal, 0)
	nearlyEqual(t, "volume", withExtra, without)
}

func TestVolumeUnknownHousingNotPriceable(t *testing.T) {
	e := testEngine()

	if _, ok := e.Volume(60, move.HousingType("chateau"), move.DensityNormal, 0); ok {
		t.Fatal("unknown housing type should not be priceable")
	}
}
