package referral

import (
	"maps"
	"slices"
)

// UniqueReachExpansion returns up to k referrers chosen greedily to
// maximize the union of their reach sets (the classic maximum-coverage
// heuristic, not an exact optimum).
//
// Each round picks the not-yet-selected referrer whose reach set adds
// the most participants not already covered; candidates are scanned in
// ascending identifier order, so ties keep the lexically smallest. The
// selection stops early once no referrer adds anything new. k <= 0
// yields an empty slice. O(k * V) in the worst case.
func (n *Network) UniqueReachExpansion(k int) []string {
	if k <= 0 {
		return []string{}
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	referrers := slices.Sorted(maps.Keys(n.forward))
	reachSets := make(map[string]map[string]struct{}, len(referrers))
	for _, user := range referrers {
		reachSets[user] = n.reachSet(user)
	}

	selected := []string{}
	covered := make(map[string]struct{})
	for len(selected) < k && len(referrers) > 0 {
		best := -1
		bestGain := 0
		for i, user := range referrers {
			gain := 0
			for member := range reachSets[user] {
				if _, ok := covered[member]; !ok {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				best = i
			}
		}
		if best < 0 {
			break // nobody adds new coverage
		}

		user := referrers[best]
		selected = append(selected, user)
		for member := range reachSets[user] {
			covered[member] = struct{}{}
		}
		referrers = slices.Delete(referrers, best, best+1)
	}
	return selected
}
