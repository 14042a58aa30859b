// Package cli implements the refnet command-line interface.
//
// This package provides commands for loading referral networks from
// scenario or graph files, ranking referrers, rendering network diagrams,
// and projecting growth. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - report: Build a full analytics report (leaderboard, influencers, brokers, growth)
//   - top: Rank referrers by total downstream reach
//   - reach: Show the downstream reach of one participant
//   - influencers: Pick the best set of referrers by unique coverage
//   - brokers: Rank participants by shortest-path flow centrality
//   - render: Generate DOT, SVG, PDF, or PNG diagrams
//   - growth: Simulate adoption and invert targets (simulate, days, bonus)
//
// # Inputs
//
// Commands that read a network accept either a scenario file (.toml, a
// list of referral events) or a graph file (.json, the canonical
// serialized network).
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/refnetlabs/refnet/pkg/buildinfo"
	apperrors "github.com/refnetlabs/refnet/pkg/errors"
	"github.com/refnetlabs/refnet/pkg/graph"
	"github.com/refnetlabs/refnet/pkg/referral"
	"github.com/refnetlabs/refnet/pkg/scenario"
)

// appName is the application name used for display and completions.
const appName = "refnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Refnet analyzes referral networks and projects their growth",
		Long:         `Refnet is a CLI tool for analyzing referral networks: who referred whom, whose influence reaches furthest, which participants broker the most referral flow, and how the network grows over time.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.topCommand())
	root.AddCommand(c.reachCommand())
	root.AddCommand(c.influencersCommand())
	root.AddCommand(c.brokersCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.growthCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadNetwork builds a network from an input file. Scenario files (.toml)
// are replayed event by event; graph files (.json) are deserialized and
// re-validated edge by edge.
func (c *CLI) loadNetwork(ctx context.Context, path string) (*referral.Network, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		n, s, res, err := scenario.Build(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, rej := range res.Rejected {
			c.Logger.Warn("referral rejected",
				"referrer", rej.Referrer,
				"candidate", rej.Candidate,
				"reason", rej.Err)
		}
		c.Logger.Debug("loaded scenario",
			"name", s.Name,
			"accepted", res.Accepted,
			"rejected", len(res.Rejected))
		return n, nil
	case ".json":
		n, err := graph.ReadFile(path)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded graph",
			"participants", n.ParticipantCount(),
			"referrals", n.ReferralCount())
		return n, nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat,
			"unsupported input %q (expected a .toml scenario or .json graph)", path)
	}
}
