package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/refnetlabs/refnet/pkg/report"
)

// reportCommand creates the report command for full network analytics.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		opts    report.Options
		jsonOut bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "report [scenario.toml|graph.json]",
		Short: "Build a full analytics report for a referral network",
		Long: `Build a full analytics report for a referral network.

The report combines the reach leaderboard, the unique-coverage influencer
selection, the flow-centrality broker ranking, and a growth simulation
into a single run with a unique ID.

Use --json to emit the report as JSON, and --output to write it to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), args[0], opts, jsonOut, output)
		},
	}

	cmd.Flags().IntVarP(&opts.TopK, "top", "k", 0, fmt.Sprintf("entries per ranking (default %d)", report.DefaultTopK))
	cmd.Flags().Float64VarP(&opts.Probability, "probability", "p", 0, fmt.Sprintf("daily referral probability (default %g)", report.DefaultProbability))
	cmd.Flags().IntVarP(&opts.Days, "days", "d", 0, fmt.Sprintf("simulation horizon in days (default %d)", report.DefaultDays))
	cmd.Flags().Float64Var(&opts.Target, "target", 0, "include a days-to-target projection for this hiring total")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file (implies --json)")

	return cmd
}

// runReport builds the report and prints or writes it.
func (c *CLI) runReport(ctx context.Context, input string, opts report.Options, jsonOut bool, output string) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	rep, err := report.Build(ctx, n, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %d participants", rep.Participants))

	if jsonOut || output != "" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if output != "" {
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			printSuccess("Report written")
			printFile(output)
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(rep)
	return nil
}

// printReport renders a report for terminal display.
func printReport(rep *report.Report) {
	fmt.Println(StyleTitle.Render("Referral Network Report"))
	printDetail("run %s · %s", rep.RunID, rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	printNetworkStats(rep.Participants, rep.Referrals)
	printNewline()

	fmt.Println(StyleHighlight.Render("Top referrers by reach"))
	if len(rep.Leaderboard) == 0 {
		printDetail("no referrers")
	}
	for i, e := range rep.Leaderboard {
		fmt.Printf("  %2d. %s %s\n", i+1, StyleValue.Render(e.User),
			StyleDim.Render(fmt.Sprintf("· reach %d", e.Reach)))
	}
	printNewline()

	fmt.Println(StyleHighlight.Render("Influencers (unique coverage)"))
	printRanking(rep.Influencers, nil)
	printNewline()

	fmt.Println(StyleHighlight.Render("Brokers (flow centrality)"))
	printRanking(rep.Brokers, nil)
	printNewline()

	fmt.Println(StyleHighlight.Render("Growth projection"))
	if len(rep.Simulation) > 0 {
		final := rep.Simulation[len(rep.Simulation)-1]
		printDetail("%.1f expected referrals after %d days", final, len(rep.Simulation)-1)
	}
	if rep.Target > 0 {
		if rep.TargetReachable {
			printDetail("target of %.0f reached in %d days", rep.Target, rep.TargetDays)
		} else {
			printWarning("target of %.0f is not reachable at this rate", rep.Target)
		}
	}
}
