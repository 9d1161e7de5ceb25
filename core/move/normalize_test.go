package move

import "testing"

func TestNormalizeHousing(t *testing.T) {
	cases := []struct {
		in   string
		want HousingType
		ok   bool
	}{
		{"studio", HousingStudio, true},
		{"chambre", HousingStudio, true},
		{"T2", HousingT2, true},
		{"f3", HousingT3, true},
		{"  t4  ", HousingT4, true},
		{"t5+", HousingT5, true},
		{"maison", HousingHouse, true},
		{"maison_etages", HousingHouseMulti, true},
		{"loft", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeHousing(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("NormalizeHousing(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalizeDensityDefaultsToDense(t *testing.T) {
	cases := map[string]Density{
		"peu":         DensityLight,
		"minimaliste": DensityLight,
		"normale":     DensityNormal,
		"standard":    DensityNormal,
		"tres_meuble": DensityDense,
		"":            DensityDense,
		"garbage":     DensityDense,
	}
	for in, want := range cases {
		if got := NormalizeDensity(in); got != want {
			t.Errorf("NormalizeDensity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeElevatorLegacySpellings(t *testing.T) {
	cases := map[string]Elevator{
		"oui":          ElevatorYes,
		"true":         ElevatorYes,
		"small":        ElevatorPartial,
		"jusqua_etage": ElevatorPartial,
		"none":         ElevatorNo,
		"other":        ElevatorNo,
		"":             ElevatorNo,
		"broken":       ElevatorNo,
	}
	for in, want := range cases {
		if got := NormalizeElevator(in); got != want {
			t.Errorf("NormalizeElevator(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTier(t *testing.T) {
	if tier, ok := NormalizeTier("eco"); !ok || tier != TierEconomique {
		t.Errorf("eco should normalize to ECONOMIQUE")
	}
	if tier, ok := NormalizeTier(" luxe "); !ok || tier != TierPremium {
		t.Errorf("luxe should normalize to PREMIUM")
	}
	if _, ok := NormalizeTier("deluxe"); ok {
		t.Errorf("deluxe should not normalize")
	}
}

func TestNormalizePiano(t *testing.T) {
	if NormalizePiano("droit") != PianoUpright {
		t.Error("droit should map to upright")
	}
	if NormalizePiano("demi_queue") != PianoGrand {
		t.Error("demi_queue should map to grand")
	}
	if NormalizePiano("") != PianoNone || NormalizePiano("oui") != PianoNone {
		t.Error("unknown piano strings should map to none")
	}
}

func TestCoerceCount(t *testing.T) {
	cases := map[string]int{
		"3":    3,
		" 12 ": 12,
		"0":    0,
		"-4":   0,
		"abc":  0,
		"":     0,
		"2.5":  0,
	}
	for in, want := range cases {
		if got := CoerceCount(in); got != want {
			t.Errorf("CoerceCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestRequestCopyHelpers(t *testing.T) {
	base := Request{SurfaceM2: 60}

	withDist := base.WithDistance(120)
	if base.DistanceKm != nil {
		t.Fatal("WithDistance must not mutate the receiver")
	}
	if withDist.DistanceKm == nil || *withDist.DistanceKm != 120 {
		t.Fatal("WithDistance did not set the distance")
	}
}
