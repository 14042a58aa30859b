package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// brokersCommand creates the brokers command for flow-centrality ranking.
func (c *CLI) brokersCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "brokers [scenario.toml|graph.json]",
		Short: "Rank participants by referral flow brokered",
		Long: `Rank participants by referral flow brokered.

A participant scores one point for every ordered pair of participants
whose shortest referral chain passes through it. High scorers are the
network's connectors; removing one splits trees apart.

The computation compares shortest paths for every participant triple,
so it grows cubically with network size. Large networks take a while.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrokers(cmd.Context(), args[0], k)
		},
	}

	cmd.Flags().IntVarP(&k, "top", "k", 5, "number of brokers to show")

	return cmd
}

// runBrokers computes flow centrality and prints the ranking.
func (c *CLI) runBrokers(ctx context.Context, input string, k int) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Scoring %d participants...", n.ParticipantCount()))
	spinner.Start()
	brokers := n.FlowCentrality(k)
	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}
	spinner.Stop()

	if len(brokers) == 0 {
		printInfo("no participants in %s", input)
		return nil
	}

	fmt.Println(StyleTitle.Render("Brokers by flow centrality"))
	printNetworkStats(n.ParticipantCount(), n.ReferralCount())
	printRanking(brokers, nil)
	return nil
}
