package growth

import "testing"

func TestSimulate_ZeroProbability(t *testing.T) {
	got := Simulate(0.0, 10)

	if len(got) != 11 {
		t.Fatalf("len(Simulate(0, 10)) = %d, want 11", len(got))
	}
	for day, total := range got {
		if total != 0 {
			t.Errorf("Simulate(0, 10)[%d] = %v, want 0", day, total)
		}
	}
}

func TestSimulate_DayZero(t *testing.T) {
	got := Simulate(0.5, 0)

	if len(got) != 1 {
		t.Fatalf("len(Simulate(0.5, 0)) = %d, want 1", len(got))
	}
	if got[0] != 0 {
		t.Errorf("Simulate(0.5, 0)[0] = %v, want 0", got[0])
	}
}

func TestSimulate_NegativeDays(t *testing.T) {
	got := Simulate(0.5, -3)

	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Simulate(0.5, -3) = %v, want [0]", got)
	}
}

func TestSimulate_BasicGrowth(t *testing.T) {
	got := Simulate(0.1, 5)

	if len(got) != 6 {
		t.Fatalf("len(Simulate(0.1, 5)) = %d, want 6", len(got))
	}
	if got[0] != 0 {
		t.Errorf("day 0 total = %v, want 0", got[0])
	}
	if got[1] <= 0 {
		t.Errorf("day 1 total = %v, want > 0", got[1])
	}
}

func TestSimulate_MonotoneNonDecreasing(t *testing.T) {
	for _, p := range []float64{0.0, 0.05, 0.2, 1.0} {
		got := Simulate(p, 50)
		for day := 1; day < len(got); day++ {
			if got[day] < got[day-1] {
				t.Errorf("Simulate(%v, 50) decreased at day %d: %v -> %v", p, day, got[day-1], got[day])
			}
		}
	}
}

func TestSimulate_FirstDayRate(t *testing.T) {
	// Day 1 is exactly the initial pool times p, before any retirement.
	got := Simulate(0.1, 1)

	want := float64(InitialReferrers) * 0.1
	if got[1] != want {
		t.Errorf("Simulate(0.1, 1)[1] = %v, want %v", got[1], want)
	}
}

func TestFinalTotal_MatchesSimulate(t *testing.T) {
	sim := Simulate(0.2, 30)

	if got := FinalTotal(0.2, 30); got != sim[len(sim)-1] {
		t.Errorf("FinalTotal(0.2, 30) = %v, want %v", got, sim[len(sim)-1])
	}
}
