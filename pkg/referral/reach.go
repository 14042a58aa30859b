package referral

// TotalReach returns the number of participants strictly downstream of
// user, direct and indirect. Unknown participants and pure leaves have
// zero reach.
func (n *Network) TotalReach(user string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.reachSet(user))
}

// ReachSet returns the set of all participants strictly downstream of
// user, excluding user itself. Unknown participants yield an empty set.
// The returned map is a fresh copy and safe to modify.
func (n *Network) ReachSet(user string) map[string]struct{} {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.reachSet(user)
}

// reachSet runs a level-order BFS from user over forward adjacency and
// returns every node reached, excluding user. Callers must hold at least
// the read lock. O(V+E).
func (n *Network) reachSet(user string) map[string]struct{} {
	reached := make(map[string]struct{})
	if _, ok := n.forward[user]; !ok {
		return reached
	}

	visited := map[string]struct{}{user: {}}
	queue := []string{user}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range n.forward[current] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			reached[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return reached
}

// pathExists reports whether a directed path exists from start to end.
// It exits as soon as end is dequeued. Callers must hold the lock.
func (n *Network) pathExists(start, end string) bool {
	if _, ok := n.forward[start]; !ok {
		return false
	}

	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			return true
		}
		for next := range n.forward[current] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return false
}

// distances returns BFS shortest-path hop counts from source to every
// reachable participant, including source at distance 0. Unreachable
// participants are absent from the map. Callers must hold the read lock.
func (n *Network) distances(source string) map[string]int {
	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range n.forward[current] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			queue = append(queue, next)
		}
	}
	return dist
}
