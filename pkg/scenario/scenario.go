// Package scenario loads referral scenario files.
//
// A scenario is a TOML file describing a stream of referral events and,
// optionally, growth-model parameters:
//
//	name = "q3-campaign"
//
//	[[referral]]
//	referrer = "Alice"
//	candidate = "Bob"
//
//	[[referral]]
//	referrer = "Bob"
//	candidate = "Charlie"
//
//	[growth]
//	probability = 0.1
//	days = 30
//	target = 500
//
// Events are replayed in file order through the network's validated
// insertion path; rejected events are reported, not fatal, mirroring how
// a live system refuses an invalid referral and moves on.
package scenario

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/refnetlabs/refnet/pkg/errors"
	"github.com/refnetlabs/refnet/pkg/observability"
	"github.com/refnetlabs/refnet/pkg/referral"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name      string        `toml:"name"`
	Referrals []Referral    `toml:"referral"`
	Growth    *GrowthParams `toml:"growth"`
}

// Referral is a single referral event.
type Referral struct {
	Referrer  string `toml:"referrer"`
	Candidate string `toml:"candidate"`
}

// GrowthParams are optional growth-model inputs carried by a scenario.
type GrowthParams struct {
	Probability float64 `toml:"probability"`
	Days        int     `toml:"days"`
	Target      float64 `toml:"target"`
}

// Rejection records a referral event refused during replay.
type Rejection struct {
	Referral
	Err error
}

// Result summarizes a replay.
type Result struct {
	Accepted int
	Rejected []Rejection
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "scenario %s", path)
		}
		return nil, err
	}

	var s Scenario
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidScenario, err, "parse %s", path)
	}

	for i, r := range s.Referrals {
		if r.Referrer == "" || r.Candidate == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidScenario,
				"referral %d in %s: referrer and candidate are required", i+1, path)
		}
	}
	return &s, nil
}

// Apply replays the scenario's referral events into n, in file order.
// Rejected events are collected in the result rather than aborting the
// replay. Mutation hooks fire for every event.
func (s *Scenario) Apply(ctx context.Context, n *referral.Network) Result {
	var res Result
	for _, r := range s.Referrals {
		if err := n.AddReferral(r.Referrer, r.Candidate); err != nil {
			observability.Mutation().OnReferralRejected(ctx, r.Referrer, r.Candidate, err)
			res.Rejected = append(res.Rejected, Rejection{Referral: r, Err: err})
			continue
		}
		observability.Mutation().OnReferralAccepted(ctx, r.Referrer, r.Candidate)
		res.Accepted++
	}
	return res
}

// Build loads a scenario file and replays it into a fresh network.
func Build(ctx context.Context, path string) (*referral.Network, *Scenario, Result, error) {
	s, err := Load(path)
	if err != nil {
		return nil, nil, Result{}, err
	}
	n := referral.New()
	res := s.Apply(ctx, n)
	return n, s, res, nil
}

// Describe returns a one-line human summary of a replay result.
func (r Result) Describe() string {
	if len(r.Rejected) == 0 {
		return fmt.Sprintf("%d referrals accepted", r.Accepted)
	}
	return fmt.Sprintf("%d referrals accepted, %d rejected", r.Accepted, len(r.Rejected))
}
