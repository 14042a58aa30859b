package referral

import (
	"slices"
	"testing"
)

func TestTopReferrersByReach_NonPositiveK(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	if got := n.TopReferrersByReach(0); len(got) != 0 {
		t.Errorf("TopReferrersByReach(0) = %v, want empty", got)
	}
	if got := n.TopReferrersByReach(-1); len(got) != 0 {
		t.Errorf("TopReferrersByReach(-1) = %v, want empty", got)
	}
}

func TestTopReferrersByReach_RanksByReach(t *testing.T) {
	n := New()
	// Alice reaches 3, Bob reaches 2, Charlie reaches 1.
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("Charlie", "David")

	got := n.TopReferrersByReach(3)
	want := []string{"Alice", "Bob", "Charlie"}
	if !slices.Equal(got, want) {
		t.Errorf("TopReferrersByReach(3) = %v, want %v", got, want)
	}
}

func TestTopReferrersByReach_TruncatesToK(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("Charlie", "David")

	if got := n.TopReferrersByReach(2); len(got) != 2 {
		t.Errorf("len(TopReferrersByReach(2)) = %d, want 2", len(got))
	}
}

func TestTopReferrersByReach_KLargerThanPool(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	got := n.TopReferrersByReach(10)
	if !slices.Equal(got, []string{"Alice"}) {
		t.Errorf("TopReferrersByReach(10) = %v, want [Alice]", got)
	}
}

func TestTopReferrersByReach_LexicalTieBreak(t *testing.T) {
	n := New()
	// Three referrers, one direct referral each: equal reach.
	n.AddReferral("Carol", "X")
	n.AddReferral("Alice", "Y")
	n.AddReferral("Bob", "Z")

	got := n.TopReferrersByReach(3)
	want := []string{"Alice", "Bob", "Carol"}
	if !slices.Equal(got, want) {
		t.Errorf("TopReferrersByReach(3) = %v, want %v (lexical tie-break)", got, want)
	}
}

func TestTopReferrersByReach_ExcludesPureLeaves(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	got := n.TopReferrersByReach(5)
	if slices.Contains(got, "Bob") {
		t.Errorf("TopReferrersByReach(5) = %v, ranked pure leaf Bob", got)
	}
}

func TestTopReferrersByReach_SortedDescending(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Alice", "Charlie")
	n.AddReferral("Bob", "David")
	n.AddReferral("Eve", "Frank")

	got := n.TopReferrersByReach(10)
	for i := 1; i < len(got); i++ {
		if n.TotalReach(got[i-1]) < n.TotalReach(got[i]) {
			t.Errorf("ranking not descending at %d: %v", i, got)
		}
	}
}
