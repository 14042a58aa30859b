// Package report assembles referral analytics and growth projections into
// a single run report.
//
// This package implements the complete analyze → simulate → assemble flow
// shared by the CLI commands. By centralizing this logic, every entry
// point produces the same report for the same network and options.
//
// # Usage
//
// Build a report from a network:
//
//	opts := report.Options{TopK: 10, Probability: 0.1, Days: 30}
//	rep, err := report.Build(ctx, network, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rep.Leaderboard)
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/refnetlabs/refnet/pkg/growth"
	"github.com/refnetlabs/refnet/pkg/observability"
	"github.com/refnetlabs/refnet/pkg/referral"
)

// Default values shared by CLI and library consumers.
const (
	// DefaultTopK is the default number of entries per ranking.
	DefaultTopK = 5

	// DefaultProbability is the default daily referral probability.
	DefaultProbability = 0.1

	// DefaultDays is the default simulation horizon in days.
	DefaultDays = 30
)

// Options contains all configuration for building a report.
// This struct supports JSON serialization for saved run configs.
type Options struct {
	// TopK is the number of entries in each ranking section.
	TopK int `json:"top_k,omitempty"`

	// Probability is the daily referral success probability for the
	// growth simulation, in [0, 1].
	Probability float64 `json:"probability,omitempty"`

	// Days is the simulation horizon.
	Days int `json:"days,omitempty"`

	// Target, when positive, adds a days-to-target projection.
	Target float64 `json:"target,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option ranges and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.TopK < 0 {
		return fmt.Errorf("top_k must be non-negative, got %d", o.TopK)
	}
	if o.Probability < 0 || o.Probability > 1 {
		return fmt.Errorf("probability must be in [0, 1], got %g", o.Probability)
	}
	if o.Days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", o.Days)
	}
	if o.Target < 0 {
		return fmt.Errorf("target must be non-negative, got %g", o.Target)
	}

	if o.TopK == 0 {
		o.TopK = DefaultTopK
	}
	if o.Probability == 0 {
		o.Probability = DefaultProbability
	}
	if o.Days == 0 {
		o.Days = DefaultDays
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Entry is a ranked participant with its downstream reach.
type Entry struct {
	User  string `json:"user"`
	Reach int    `json:"reach"`
}

// Report contains the outputs of a single analytics run.
type Report struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generated_at"`

	// Network size at report time.
	Participants int `json:"participants"`
	Referrals    int `json:"referrals"`

	// Leaderboard ranks referrers by total downstream reach.
	Leaderboard []Entry `json:"leaderboard"`

	// Influencers is the greedy unique-coverage selection.
	Influencers []string `json:"influencers"`

	// Brokers ranks participants by shortest-path flow centrality.
	Brokers []string `json:"brokers"`

	// Simulation holds cumulative expected referrals per day, day 0 first.
	Simulation []float64 `json:"simulation"`

	// Target projection, present when Options.Target was set.
	Target          float64 `json:"target,omitempty"`
	TargetDays      int     `json:"target_days,omitempty"`
	TargetReachable bool    `json:"target_reachable,omitempty"`

	// Stats contains timing information.
	Stats Stats `json:"stats"`
}

// Stats contains report build timings.
type Stats struct {
	AnalyticsTime  time.Duration `json:"analytics_time"`
	SimulationTime time.Duration `json:"simulation_time"`
}

// Build runs the analytics and the growth simulation against n and
// assembles the results into a report.
func Build(ctx context.Context, n *referral.Network, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	rep := &Report{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		Participants: n.ParticipantCount(),
		Referrals:    n.ReferralCount(),
	}

	analyticsStart := time.Now()

	rep.Leaderboard = runRanking(ctx, "leaderboard", rep.Participants, func() []Entry {
		users := n.TopReferrersByReach(opts.TopK)
		entries := make([]Entry, len(users))
		for i, u := range users {
			entries[i] = Entry{User: u, Reach: n.TotalReach(u)}
		}
		return entries
	})
	rep.Influencers = runRanking(ctx, "influencers", rep.Participants, func() []string {
		return n.UniqueReachExpansion(opts.TopK)
	})
	rep.Brokers = runRanking(ctx, "brokers", rep.Participants, func() []string {
		return n.FlowCentrality(opts.TopK)
	})

	rep.Stats.AnalyticsTime = time.Since(analyticsStart)
	opts.Logger.Info("computed rankings",
		"participants", rep.Participants,
		"top_k", opts.TopK,
		"duration", rep.Stats.AnalyticsTime)

	simStart := time.Now()
	observability.Analysis().OnAnalysisStart(ctx, "simulation", rep.Participants)
	rep.Simulation = growth.Simulate(opts.Probability, opts.Days)
	if opts.Target > 0 {
		rep.Target = opts.Target
		days, err := growth.DaysToTarget(opts.Probability, opts.Target)
		switch {
		case err == nil:
			rep.TargetDays = days
			rep.TargetReachable = true
		case errors.Is(err, growth.ErrUnreachable):
			rep.TargetReachable = false
		default:
			observability.Analysis().OnAnalysisComplete(ctx, "simulation", time.Since(simStart), err)
			return nil, fmt.Errorf("days to target: %w", err)
		}
	}
	observability.Analysis().OnAnalysisComplete(ctx, "simulation", time.Since(simStart), nil)

	rep.Stats.SimulationTime = time.Since(simStart)
	opts.Logger.Info("simulated growth",
		"probability", opts.Probability,
		"days", opts.Days,
		"duration", rep.Stats.SimulationTime)

	return rep, nil
}

// runRanking wraps a ranking computation with analysis hooks.
func runRanking[T any](ctx context.Context, kind string, participants int, fn func() T) T {
	start := time.Now()
	observability.Analysis().OnAnalysisStart(ctx, kind, participants)
	out := fn()
	observability.Analysis().OnAnalysisComplete(ctx, kind, time.Since(start), nil)
	return out
}
