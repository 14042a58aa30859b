package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// topCommand creates the top command for ranking referrers by reach.
func (c *CLI) topCommand() *cobra.Command {
	var (
		k           int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "top [scenario.toml|graph.json]",
		Short: "Rank referrers by total downstream reach",
		Long: `Rank referrers by total downstream reach.

Reach counts every participant in a referrer's downstream tree, direct
and indirect. Ties are broken alphabetically so the ranking is stable.

Use --interactive to browse the leaderboard and inspect each referrer's
direct referrals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTop(cmd.Context(), args[0], k, interactive)
		},
	}

	cmd.Flags().IntVarP(&k, "top", "k", 10, "number of referrers to show")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the leaderboard interactively")

	return cmd
}

// runTop ranks referrers and prints or browses the result.
func (c *CLI) runTop(ctx context.Context, input string, k int, interactive bool) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	users := n.TopReferrersByReach(k)
	if len(users) == 0 {
		printInfo("no referrers in %s", input)
		return nil
	}

	if interactive {
		model := newLeaderboardModel(n, users)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}
		return nil
	}

	scores := make(map[string]int, len(users))
	for _, u := range users {
		scores[u] = n.TotalReach(u)
	}

	fmt.Println(StyleTitle.Render("Top referrers by reach"))
	printNetworkStats(n.ParticipantCount(), n.ReferralCount())
	printRanking(users, scores)
	printNewline()
	printNextStep("Pick a complementary set", fmt.Sprintf("%s influencers %s", appName, input))
	return nil
}
