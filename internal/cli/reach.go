package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

// reachCommand creates the reach command for inspecting one participant.
func (c *CLI) reachCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reach [scenario.toml|graph.json] [participant]",
		Short: "Show the downstream reach of one participant",
		Long: `Show the downstream reach of one participant.

Reach counts everyone the participant referred, directly or through a
chain of referrals. The participant itself is not counted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReach(cmd.Context(), args[0], args[1], all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list the full downstream set, not just direct referrals")

	return cmd
}

// runReach prints reach details for one participant.
func (c *CLI) runReach(ctx context.Context, input, user string, all bool) error {
	n, err := c.loadNetwork(ctx, input)
	if err != nil {
		return err
	}

	direct := n.DirectReferrals(user)
	total := n.TotalReach(user)

	fmt.Println(StyleTitle.Render(user))
	if referrer, ok := n.ReferrerOf(user); ok {
		printKeyValue("referred by", referrer)
	} else {
		printKeyValue("referred by", StyleDim.Render("nobody (root)"))
	}
	printKeyValue("direct", fmt.Sprintf("%d", len(direct)))
	printKeyValue("total reach", fmt.Sprintf("%d", total))

	if len(direct) > 0 {
		printNewline()
		fmt.Println(StyleHighlight.Render("Direct referrals"))
		printRanking(direct, nil)
	}

	if all && total > len(direct) {
		printNewline()
		fmt.Println(StyleHighlight.Render("Full downstream set"))
		printRanking(slices.Sorted(maps.Keys(n.ReachSet(user))), nil)
	}

	return nil
}
