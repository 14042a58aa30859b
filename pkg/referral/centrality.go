package referral

import (
	"cmp"
	"slices"
)

// FlowCentrality returns up to k participants ordered by a
// betweenness-style broker score, highest first.
//
// For every ordered pair (source, target) of distinct participants with a
// directed path between them, every third participant broker satisfying
//
//	dist(source, broker) + dist(broker, target) == dist(source, target)
//
// lies on a shortest directed path and scores one point. Only the forward
// referral direction is considered. Ties are broken by ascending
// identifier. k <= 0 yields an empty slice.
//
// The computation is O(V^3) over the full participant set and is intended
// for small-to-moderate networks; callers needing bounded latency must
// impose limits externally.
func (n *Network) FlowCentrality(k int) []string {
	if k <= 0 {
		return []string{}
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	vertices := n.participants()

	dist := make(map[string]map[string]int, len(vertices))
	for _, v := range vertices {
		dist[v] = n.distances(v)
	}

	scores := make(map[string]int, len(vertices))
	for _, source := range vertices {
		for _, target := range vertices {
			if source == target {
				continue
			}
			direct, ok := dist[source][target]
			if !ok {
				continue
			}
			for _, broker := range vertices {
				if broker == source || broker == target {
					continue
				}
				toBroker, ok := dist[source][broker]
				if !ok {
					continue
				}
				fromBroker, ok := dist[broker][target]
				if !ok {
					continue
				}
				if toBroker+fromBroker == direct {
					scores[broker]++
				}
			}
		}
	}

	slices.SortFunc(vertices, func(a, b string) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	if k > len(vertices) {
		k = len(vertices)
	}
	return slices.Clone(vertices[:k])
}
