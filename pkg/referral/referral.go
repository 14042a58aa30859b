package referral

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

var (
	// ErrSelfReferral is returned by [Network.AddReferral] when the referrer
	// and candidate are the same participant. Self-edges are never admitted.
	ErrSelfReferral = errors.New("participant cannot refer themselves")

	// ErrAlreadyReferred is returned by [Network.AddReferral] when the
	// candidate already has a recorded referrer. The referrer of a candidate
	// is write-once for the candidate's entire lifetime, regardless of who
	// the existing referrer is.
	ErrAlreadyReferred = errors.New("candidate already referred")

	// ErrWouldCreateCycle is returned by [Network.AddReferral] when a
	// directed path already exists from the candidate to the referrer, so
	// admitting the edge would close a cycle.
	ErrWouldCreateCycle = errors.New("referral would create a cycle")
)

// Network is a directed referral graph over opaque participant identifiers.
// Identifiers are compared exactly (case-sensitive, no normalization).
//
// Participants are created implicitly the first time they appear as a
// referrer or candidate; there is no delete operation, the network only
// grows. The zero value is not usable - use New.
type Network struct {
	mu         sync.RWMutex
	forward    map[string]map[string]struct{} // referrer -> direct candidates
	referrerOf map[string]string              // candidate -> sole referrer (write-once)
}

// New creates an empty referral network.
func New() *Network {
	return &Network{
		forward:    make(map[string]map[string]struct{}),
		referrerOf: make(map[string]string),
	}
}

// AddReferral records that referrer referred candidate.
//
// The edge is validated before anything is written, so a rejected call
// leaves the network unchanged. Rejections, in check order:
//
//   - ErrSelfReferral if referrer == candidate
//   - ErrAlreadyReferred if candidate already has a referrer
//   - ErrWouldCreateCycle if candidate can already reach referrer
//
// AddReferral is the only mutation on Network and takes the write lock.
func (n *Network) AddReferral(referrer, candidate string) error {
	if referrer == candidate {
		return ErrSelfReferral
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, taken := n.referrerOf[candidate]; taken {
		return ErrAlreadyReferred
	}
	if n.pathExists(candidate, referrer) {
		return ErrWouldCreateCycle
	}

	set, ok := n.forward[referrer]
	if !ok {
		set = make(map[string]struct{})
		n.forward[referrer] = set
	}
	set[candidate] = struct{}{}
	n.referrerOf[candidate] = referrer
	return nil
}

// DirectReferrals returns the participants directly referred by user, in
// ascending identifier order. Unknown participants yield an empty slice,
// never an error. The returned slice is a copy and safe to modify.
func (n *Network) DirectReferrals(user string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Sorted(maps.Keys(n.forward[user]))
}

// ReferrerOf returns the participant who referred candidate, if any.
func (n *Network) ReferrerOf(candidate string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	r, ok := n.referrerOf[candidate]
	return r, ok
}

// Referrers returns every participant who has referred at least one
// other participant, in ascending identifier order.
func (n *Network) Referrers() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Sorted(maps.Keys(n.forward))
}

// Participants returns every participant ever seen (as referrer or
// candidate), in ascending identifier order.
func (n *Network) Participants() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.participants()
}

// ParticipantCount returns the number of distinct participants seen.
func (n *Network) ParticipantCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.participantSet())
}

// ReferralCount returns the total number of referral edges recorded.
// Every candidate has exactly one incoming edge, so this equals the
// number of known candidates.
func (n *Network) ReferralCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.referrerOf)
}

// participants returns the sorted union of referrers and candidates.
// Callers must hold at least the read lock.
func (n *Network) participants() []string {
	return slices.Sorted(maps.Keys(n.participantSet()))
}

// participantSet returns the union of referrers and candidates.
// Callers must hold at least the read lock.
func (n *Network) participantSet() map[string]struct{} {
	all := make(map[string]struct{}, len(n.forward)+len(n.referrerOf))
	for r := range n.forward {
		all[r] = struct{}{}
	}
	for c := range n.referrerOf {
		all[c] = struct{}{}
	}
	return all
}
