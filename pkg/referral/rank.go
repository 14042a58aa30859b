package referral

import (
	"cmp"
	"slices"
)

// TopReferrersByReach returns up to k participants ordered by total
// downstream reach, largest first. Only recorded referrers are ranked;
// participants who never referred anyone are excluded even though their
// reach is trivially zero. Ties are broken by ascending identifier so
// the ordering is deterministic. k <= 0 yields an empty slice.
func (n *Network) TopReferrersByReach(k int) []string {
	if k <= 0 {
		return []string{}
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	type ranked struct {
		user  string
		reach int
	}
	pool := make([]ranked, 0, len(n.forward))
	for user := range n.forward {
		pool = append(pool, ranked{user: user, reach: len(n.reachSet(user))})
	}
	slices.SortFunc(pool, func(a, b ranked) int {
		if c := cmp.Compare(b.reach, a.reach); c != 0 {
			return c
		}
		return cmp.Compare(a.user, b.user)
	})

	if k > len(pool) {
		k = len(pool)
	}
	top := make([]string, k)
	for i := range top {
		top[i] = pool[i].user
	}
	return top
}
