package referral

import "testing"

// chain builds Alice -> Bob -> Charlie -> David.
func chain(t *testing.T) *Network {
	t.Helper()
	n := New()
	for _, e := range [][2]string{{"Alice", "Bob"}, {"Bob", "Charlie"}, {"Charlie", "David"}} {
		if err := n.AddReferral(e[0], e[1]); err != nil {
			t.Fatalf("AddReferral(%s, %s) = %v, want nil", e[0], e[1], err)
		}
	}
	return n
}

func TestTotalReach_Chain(t *testing.T) {
	n := chain(t)

	cases := []struct {
		user string
		want int
	}{
		{"Alice", 3},
		{"Bob", 2},
		{"Charlie", 1},
		{"David", 0},
	}
	for _, c := range cases {
		if got := n.TotalReach(c.user); got != c.want {
			t.Errorf("TotalReach(%s) = %d, want %d", c.user, got, c.want)
		}
	}
}

func TestTotalReach_UnknownParticipant(t *testing.T) {
	n := New()

	if got := n.TotalReach("Ghost"); got != 0 {
		t.Errorf("TotalReach(Ghost) = %d, want 0", got)
	}
}

func TestTotalReach_BranchingTree(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Alice", "Charlie")
	n.AddReferral("Bob", "David")
	n.AddReferral("Charlie", "Eve")
	n.AddReferral("Charlie", "Frank")

	if got := n.TotalReach("Alice"); got != 5 {
		t.Errorf("TotalReach(Alice) = %d, want 5", got)
	}
	if got := n.TotalReach("Charlie"); got != 2 {
		t.Errorf("TotalReach(Charlie) = %d, want 2", got)
	}
}

func TestTotalReach_MonotoneUnderInsertion(t *testing.T) {
	n := New()
	n.AddReferral("Alice", "Bob")

	before := n.TotalReach("Alice")
	if err := n.AddReferral("Bob", "Charlie"); err != nil {
		t.Fatalf("AddReferral(Bob, Charlie) = %v, want nil", err)
	}
	after := n.TotalReach("Alice")

	if after < before {
		t.Errorf("TotalReach(Alice) shrank from %d to %d after accepted edge", before, after)
	}
}

func TestReachSet_ExcludesSelf(t *testing.T) {
	n := chain(t)

	set := n.ReachSet("Bob")
	if _, ok := set["Bob"]; ok {
		t.Errorf("ReachSet(Bob) contains Bob")
	}
	for _, want := range []string{"Charlie", "David"} {
		if _, ok := set[want]; !ok {
			t.Errorf("ReachSet(Bob) missing %s", want)
		}
	}
	if len(set) != 2 {
		t.Errorf("len(ReachSet(Bob)) = %d, want 2", len(set))
	}
}

func TestReachSet_UnknownParticipant(t *testing.T) {
	n := New()

	if set := n.ReachSet("Ghost"); len(set) != 0 {
		t.Errorf("ReachSet(Ghost) = %v, want empty", set)
	}
}

func TestReachSet_DefensiveCopy(t *testing.T) {
	n := chain(t)

	set := n.ReachSet("Alice")
	delete(set, "Bob")

	if got := n.TotalReach("Alice"); got != 3 {
		t.Errorf("TotalReach(Alice) = %d after caller mutation, want 3", got)
	}
}
