package cli

import (
	"math"
	"testing"
)

func TestAdoptionCurve_Monotone(t *testing.T) {
	curve := adoptionCurve(1.0, 1000)

	prev := curve(0)
	if prev != 0 {
		t.Errorf("curve(0) = %g, want 0", prev)
	}
	for bonus := 10; bonus <= 10000; bonus += 10 {
		p := curve(bonus)
		if p < prev {
			t.Fatalf("curve(%d) = %g < curve(%d) = %g, want non-decreasing", bonus, p, bonus-10, prev)
		}
		prev = p
	}
}

func TestAdoptionCurve_SaturatesAtPmax(t *testing.T) {
	curve := adoptionCurve(0.4, 100)

	if p := curve(1000000); p > 0.4 {
		t.Errorf("curve(1000000) = %g, want at most pmax 0.4", p)
	}
	if p := curve(1000000); math.Abs(p-0.4) > 1e-6 {
		t.Errorf("curve(1000000) = %g, want ~0.4", p)
	}
}

func TestAdoptionCurve_ScaleSetsKnee(t *testing.T) {
	curve := adoptionCurve(1.0, 500)

	// At bonus == scale the curve sits at 1 - 1/e of pmax.
	want := 1 - math.Exp(-1)
	if got := curve(500); math.Abs(got-want) > 1e-9 {
		t.Errorf("curve(500) = %g, want %g", got, want)
	}
}

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		p       float64
		wantErr bool
	}{
		{0, false},
		{0.5, false},
		{1, false},
		{-0.1, true},
		{1.1, true},
	}

	for _, tt := range tests {
		err := validateProbability(tt.p)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateProbability(%g) error = %v, wantErr %v", tt.p, err, tt.wantErr)
		}
	}
}
