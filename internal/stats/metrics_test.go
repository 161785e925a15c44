package stats

import "testing"

func eqf(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s = nil, want %v", name, want)
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", name, *got, want)
	}
}

func TestPctNilOnEmptyDenominator(t *testing.T) {
	if got := Pct(3, 0, 1); got != nil {
		t.Errorf("Pct(3, 0) = %v, want nil", *got)
	}
	if got := Pct(3, -1, 1); got != nil {
		t.Errorf("Pct(3, -1) = %v, want nil", *got)
	}
	eqf(t, "Pct(1, 4)", Pct(1, 4, 1), 25.0)
	eqf(t, "Pct(1, 3)", Pct(1, 3, 1), 33.3)
}

func TestBattingRates(t *testing.T) {
	// 2-for-4 with a double
	eqf(t, "AVG", BattingAverage(2, 4), 0.5)
	if got := BattingAverage(0, 0); got != nil {
		t.Errorf("AVG with no AB = %v, want nil", *got)
	}

	// 1 hit, 1 walk, 0 HBP, 3 AB, 0 SF -> (1+1)/(3+1) = .500
	eqf(t, "OBP", OBP(1, 1, 0, 3, 0), 0.5)
	// TB 5 over 4 AB
	eqf(t, "SLG", SLG(5, 4), 1.25)

	obp, slg := OBP(1, 1, 0, 3, 0), SLG(5, 4)
	eqf(t, "OPS", OPS(obp, slg), 1.75)
	if OPS(nil, slg) != nil || OPS(obp, nil) != nil {
		t.Error("OPS with a nil side must be nil")
	}

	avg := BattingAverage(2, 4)
	eqf(t, "ISO", ISO(slg, avg), 0.75)
}

func TestContactRates(t *testing.T) {
	eqf(t, "HardHitPct", HardHitPct(3, 10), 30.0)
	if HardHitPct(0, 0) != nil {
		t.Error("HardHitPct with no balls in play must be nil")
	}
	// 10 swings, 2 whiffs -> 80.0
	eqf(t, "ContactPct", ContactPct(10, 2), 80.0)
	if ContactPct(0, 0) != nil {
		t.Error("ContactPct with no swings must be nil")
	}
}

func TestMeanAccIgnoresNils(t *testing.T) {
	var a meanAcc
	if a.mean(1) != nil {
		t.Error("empty mean must be nil")
	}
	v1, v2 := 90.0, 95.5
	a.add(&v1)
	a.add(nil)
	a.add(&v2)
	eqf(t, "mean", a.mean(1), 92.8)
}

func TestExtremeAcc(t *testing.T) {
	var max, min extremeAcc
	if max.value(1) != nil {
		t.Error("empty extreme must be nil")
	}
	for _, v := range []float64{91.2, 97.6, 94.0} {
		v := v
		max.addMax(&v)
		min.addMin(&v)
	}
	eqf(t, "max", max.value(1), 97.6)
	eqf(t, "min", min.value(0), 91.0)
}
