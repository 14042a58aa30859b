package referral_test

import (
	"fmt"

	"github.com/refnetlabs/refnet/pkg/referral"
)

func Example() {
	n := referral.New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("Charlie", "David")

	fmt.Println(n.TotalReach("Alice"))
	fmt.Println(n.TotalReach("David"))
	// Output:
	// 3
	// 0
}

func ExampleNetwork_AddReferral() {
	n := referral.New()
	if err := n.AddReferral("Alice", "Bob"); err != nil {
		fmt.Println("rejected:", err)
	}
	if err := n.AddReferral("Bob", "Alice"); err != nil {
		fmt.Println("rejected:", err)
	}
	// Output:
	// rejected: referral would create a cycle
}

func ExampleNetwork_TopReferrersByReach() {
	n := referral.New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("Charlie", "David")

	fmt.Println(n.TopReferrersByReach(2))
	// Output:
	// [Alice Bob]
}

func ExampleNetwork_UniqueReachExpansion() {
	n := referral.New()
	n.AddReferral("Alice", "Bob")
	n.AddReferral("Bob", "Charlie")
	n.AddReferral("David", "Eve")

	fmt.Println(n.UniqueReachExpansion(2))
	// Output:
	// [Alice David]
}
