// Package graph defines the canonical serialization format for referral
// networks.
//
// The format is human-readable JSON designed for round-trip fidelity:
// export → re-import reproduces an identical network. Imports replay
// every edge through the network's validated insertion path, so a file
// that encodes an invalid network (cycles, duplicate referrers) is
// rejected rather than silently repaired.
package graph

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/refnetlabs/refnet/pkg/referral"
)

// Graph is the serialized form of a referral network.
type Graph struct {
	Participants []string `json:"participants"`
	Referrals    []Edge   `json:"referrals"`
}

// Edge records that From referred To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromNetwork converts a network to its serialization format.
// Participants and referrals are sorted for deterministic output.
func FromNetwork(n *referral.Network) Graph {
	out := Graph{Participants: n.Participants()}

	for _, referrer := range n.Referrers() {
		for _, candidate := range n.DirectReferrals(referrer) {
			out.Referrals = append(out.Referrals, Edge{From: referrer, To: candidate})
		}
	}
	slices.SortFunc(out.Referrals, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return out
}

// ToNetwork rebuilds a network from its serialized form. Every referral
// is replayed through the validated insertion path, so structural
// violations in the input surface as errors.
func ToNetwork(g Graph) (*referral.Network, error) {
	n := referral.New()
	for _, e := range g.Referrals {
		if err := n.AddReferral(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add referral %s→%s: %w", e.From, e.To, err)
		}
	}
	return n, nil
}

// Marshal converts a network to JSON bytes.
func Marshal(n *referral.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a network.
func Unmarshal(data []byte) (*referral.Network, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a network as indented JSON to w.
func Write(n *referral.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromNetwork(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON network from r.
func Read(r io.Reader) (*referral.Network, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToNetwork(g)
}

// WriteFile writes a network to a JSON file at path.
// The file is created with 0644 permissions.
func WriteFile(n *referral.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(n, f)
}

// ReadFile reads a JSON file and returns the decoded network.
func ReadFile(path string) (*referral.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
