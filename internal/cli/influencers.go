package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// influencersCommand creates the influencers command for unique-coverage selection.
func (c *CLI) influencersCommand() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "influencers [scenario.toml|graph.json]",
		Short: "Pick the referrer set with the widest combined reach",
		Long: `Pick the referrer set with the widest combined reach.

Unlike the leaderboard, this selection penalizes overlap: each pick is
the referrer adding the most participants not already covered by the
set. Two referrers with huge but identical trees contribute only once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfluencers(cmd.Context(), args[0], k)
		},
	}

	cmd.Flags().IntVarP(&k, "top", "k", 5, "number of influencers to pick")

	return cmd
}

// runInfluencers runs the greedy coverage selection and prints the result.
func (c *CLI) runInfluencers(ctx context.Context, input string, k int) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	picks := n.UniqueReachExpansion(k)
	prog.done(fmt.Sprintf("Selected %d influencers", len(picks)))

	if len(picks) == 0 {
		printInfo("no referrers in %s", input)
		return nil
	}

	fmt.Println(StyleTitle.Render("Influencers by unique coverage"))
	printNetworkStats(n.ParticipantCount(), n.ReferralCount())
	printRanking(picks, nil)
	return nil
}
