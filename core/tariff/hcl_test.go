package tariff

import (
	"reflect"
	"testing"

	"moverz/internal/errors"
)

const validTariffHCL = `
version = "test-1"

volume {
  housing_coeff = {
    studio      = 0.30
    t1          = 0.35
    t2          = 0.40
    t3          = 0.45
    t4          = 0.50
    t5          = 0.55
    house       = 0.60
    house_multi = 0.65
  }
  density_coeff = {
    light  = 0.85
    normal = 1.00
    dense  = 1.15
  }
  appliance_volume_m3 = 0.6
}

distance {
  coeff_per_km = 1.5

  band {
    up_to_km   = 50
    economique = 28
    standard   = 35
    premium    = 45
  }
  band {
    up_to_km   = 0
    economique = 52
    standard   = 65
    premium    = 82
  }
}

pricing {
  decote     = -0.10
  socle_eur  = 350
  spread_pct = 0.12

  scale {
    up_to_m3 = 20
    factor   = 1.00
  }
  scale {
    up_to_m3 = 0
    factor   = 0.90
  }
}

access {
  no_elevator_per_floor = 0.05
  no_elevator_cap       = 1.30
  partial_per_floor     = 0.025
  partial_cap           = 1.15
  long_carry            = 1.05
  tight_access          = 1.05
  difficult_parking     = 1.03
}

season {
  peak_months      = [6, 7, 8, 9, 12]
  off_peak_months  = [1, 2, 11]
  peak_factor      = 1.30
  off_peak_factor  = 0.85
  urgency_factor   = 1.15
  urgency_max_days = 15
}

services {
  furniture_lift_eur  = 250
  piano_upright_eur   = 180
  piano_grand_eur     = 320
  debarras_flat_eur   = 90
  debarras_per_m3_eur = 15
}

baseline {
  buffer_km       = 15
  appliance_count = 3
}

fee {
  min_eur = 100
  rate    = 0.10
}
`

func TestLoadHCLBytes(t *testing.T) {
	tf, err := LoadHCLBytes([]byte(validTariffHCL), "test.hcl")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tf.Version != "test-1" {
		t.Fatalf("version = %q", tf.Version)
	}
	if got := len(tf.Bands); got != 2 {
		t.Fatalf("bands = %d, want 2", got)
	}
	if tf.Bands[0].Rates.Standard != 35 || tf.Bands[1].UpToKm != 0 {
		t.Fatalf("bands decoded wrong: %+v", tf.Bands)
	}
	if tf.SocleEur != 350 || tf.Decote != -0.10 || tf.SpreadPct != 0.12 {
		t.Fatalf("pricing decoded wrong: %+v", tf)
	}
	if tf.HousingCoeff["t2"] != 0.40 || tf.DensityCoeff["dense"] != 1.15 {
		t.Fatalf("volume coefficients decoded wrong")
	}
	if tf.UrgencyMaxDays != 15 || tf.PeakMonthFactor != 1.30 {
		t.Fatalf("season decoded wrong")
	}
	if tf.FeeMinEur != 100 || tf.FeeRate != 0.10 {
		t.Fatalf("fee decoded wrong")
	}
}

// The shipped tariff file must stay in lockstep with the pinned defaults.
func TestShippedTariffMatchesDefault(t *testing.T) {
	tf, err := LoadHCL("../../tariff.hcl")
	if err != nil {
		t.Fatalf("load shipped tariff: %v", err)
	}
	if !reflect.DeepEqual(tf, Default()) {
		t.Fatalf("tariff.hcl diverged from Default():\ngot  %+v\nwant %+v", tf, Default())
	}
}

func TestLoadHCLBytesRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax error", `version = `},
		{"missing block", `version = "x"`},
		{"unknown housing", `
version = "x"
volume {
  housing_coeff = { yurt = 0.5 }
  density_coeff = { normal = 1.0 }
  appliance_volume_m3 = 0.6
}
distance {
  coeff_per_km = 1.5
}
pricing {
  decote     = 0
  socle_eur  = 0
  spread_pct = 0
}
access {
  no_elevator_per_floor = 0
  no_elevator_cap       = 1
  partial_per_floor     = 0
  partial_cap           = 1
  long_carry            = 1
  tight_access          = 1
  difficult_parking     = 1
}
season {
  peak_months      = []
  off_peak_months  = []
  peak_factor      = 1
  off_peak_factor  = 1
  urgency_factor   = 1
  urgency_max_days = 0
}
services {
  furniture_lift_eur  = 0
  piano_upright_eur   = 0
  piano_grand_eur     = 0
  debarras_flat_eur   = 0
  debarras_per_m3_eur = 0
}
baseline {
  buffer_km       = 0
  appliance_count = 0
}
fee {
  min_eur = 0
  rate    = 0
}
`},
	}
	for _, c := range cases {
		if _, err := LoadHCLBytes([]byte(c.src), c.name); err == nil {
			t.Errorf("%s: expected an error", c.name)
		} else if !errors.IsType(err, errors.TypeTariff) {
			t.Errorf("%s: expected a tariff error, got %v", c.name, err)
		}
	}
}
