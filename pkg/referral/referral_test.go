package referral

import (
	"errors"
	"slices"
	"testing"
)

func TestAddReferral_Valid(t *testing.T) {
	n := New()

	if err := n.AddReferral("Alice", "Bob"); err != nil {
		t.Fatalf("AddReferral() = %v, want nil", err)
	}

	got := n.DirectReferrals("Alice")
	if !slices.Equal(got, []string{"Bob"}) {
		t.Errorf("DirectReferrals(Alice) = %v, want [Bob]", got)
	}
	if r, ok := n.ReferrerOf("Bob"); !ok || r != "Alice" {
		t.Errorf("ReferrerOf(Bob) = %q, %v, want Alice, true", r, ok)
	}
}

func TestAddReferral_SelfReferral(t *testing.T) {
	n := New()

	err := n.AddReferral("Alice", "Alice")

	if !errors.Is(err, ErrSelfReferral) {
		t.Errorf("AddReferral(Alice, Alice) = %v, want ErrSelfReferral", err)
	}
	if len(n.DirectReferrals("Alice")) != 0 {
		t.Errorf("network mutated by rejected self-referral")
	}
	if n.ParticipantCount() != 0 {
		t.Errorf("ParticipantCount() = %d, want 0", n.ParticipantCount())
	}
}

func TestAddReferral_AlreadyReferred(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	err := n.AddReferral("Charlie", "Bob")

	if !errors.Is(err, ErrAlreadyReferred) {
		t.Errorf("AddReferral(Charlie, Bob) = %v, want ErrAlreadyReferred", err)
	}
	if r, _ := n.ReferrerOf("Bob"); r != "Alice" {
		t.Errorf("ReferrerOf(Bob) = %q, want Alice (original relationship untouched)", r)
	}
	if len(n.DirectReferrals("Charlie")) != 0 {
		t.Errorf("Charlie's rejected referral was recorded")
	}
}

func TestAddReferral_DirectCycle(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	err := n.AddReferral("Bob", "Alice")

	if !errors.Is(err, ErrWouldCreateCycle) {
		t.Errorf("AddReferral(Bob, Alice) = %v, want ErrWouldCreateCycle", err)
	}
	if len(n.DirectReferrals("Bob")) != 0 {
		t.Errorf("Bob's rejected referral was recorded")
	}
	if got := n.DirectReferrals("Alice"); !slices.Equal(got, []string{"Bob"}) {
		t.Errorf("DirectReferrals(Alice) = %v, want [Bob]", got)
	}
}

func TestAddReferral_LongCycle(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("Charlie", "David")

	err := n.AddReferral("David", "Alice")

	if !errors.Is(err, ErrWouldCreateCycle) {
		t.Errorf("AddReferral(David, Alice) = %v, want ErrWouldCreateCycle", err)
	}
	if len(n.DirectReferrals("David")) != 0 {
		t.Errorf("David's rejected referral was recorded")
	}
}

func TestAddReferral_AcyclicAfterMutations(t *testing.T) {
	n := New()
	edges := [][2]string{
		{"Alice", "Bob"}, {"Alice", "Charlie"}, {"Bob", "David"},
		{"Charlie", "Eve"}, {"David", "Frank"}, {"Eve", "Alice"}, // rejected
	}
	for _, e := range edges {
		n.AddReferral(e[0], e[1])
	}

	// No participant may reach itself through the forward relation.
	for _, p := range n.Participants() {
		if _, ok := n.ReachSet(p)[p]; ok {
			t.Errorf("participant %s can reach itself", p)
		}
	}
}

func TestDirectReferrals_UnknownParticipant(t *testing.T) {
	n := New()

	if got := n.DirectReferrals("Ghost"); len(got) != 0 {
		t.Errorf("DirectReferrals(Ghost) = %v, want empty", got)
	}
}

func TestDirectReferrals_DefensiveCopy(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	got := n.DirectReferrals("Alice")
	got[0] = "Mallory"

	if fresh := n.DirectReferrals("Alice"); !slices.Equal(fresh, []string{"Bob"}) {
		t.Errorf("DirectReferrals(Alice) = %v after caller mutation, want [Bob]", fresh)
	}
}

func TestDirectReferrals_Sorted(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Charlie")
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Alice", "David")

	got := n.DirectReferrals("Alice")
	want := []string{"Bob", "Charlie", "David"}
	if !slices.Equal(got, want) {
		t.Errorf("DirectReferrals(Alice) = %v, want %v", got, want)
	}
}

func TestParticipants_UnionOfReferrersAndCandidates(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")

	got := n.Participants()
	want := []string{"Alice", "Bob", "Charlie"}
	if !slices.Equal(got, want) {
		t.Errorf("Participants() = %v, want %v", got, want)
	}
	if n.ParticipantCount() != 3 {
		t.Errorf("ParticipantCount() = %d, want 3", n.ParticipantCount())
	}
	if n.ReferralCount() != 2 {
		t.Errorf("ReferralCount() = %d, want 2", n.ReferralCount())
	}
}

func TestReferrers_ExcludesLeaves(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")

	got := n.Referrers()
	want := []string{"Alice", "Bob"}
	if !slices.Equal(got, want) {
		t.Errorf("Referrers() = %v, want %v", got, want)
	}
}
