package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	apperrors "github.com/refnetlabs/refnet/pkg/errors"
	"github.com/refnetlabs/refnet/pkg/growth"
)

// growthCommand creates the growth command group.
func (c *CLI) growthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Simulate network growth and invert hiring targets",
		Long: `Simulate network growth and invert hiring targets.

The model starts with a fixed pool of active referrers, each making a
successful referral with daily probability p and retiring after ten
successes. Subcommands either run the simulation forward or solve for
the days or referral bonus needed to hit a target.`,
	}

	cmd.AddCommand(c.growthSimulateCommand())
	cmd.AddCommand(c.growthDaysCommand())
	cmd.AddCommand(c.growthBonusCommand())

	return cmd
}

// growthSimulateCommand creates the simulate subcommand.
func (c *CLI) growthSimulateCommand() *cobra.Command {
	var (
		probability float64
		days        int
		table       bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project cumulative expected referrals over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProbability(probability); err != nil {
				return err
			}
			if days < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "days must be non-negative, got %d", days)
			}

			logger := loggerFromContext(cmd.Context())
			totals := growth.Simulate(probability, days)
			logger.Debug("simulated growth", "probability", probability, "days", days)

			if table {
				for day, total := range totals {
					printKeyValue(fmt.Sprintf("day %d", day), fmt.Sprintf("%.1f", total))
				}
				return nil
			}
			printSuccess("%.1f expected referrals after %d days (p=%g)", totals[len(totals)-1], days, probability)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&probability, "probability", "p", 0.1, "daily referral probability per active referrer")
	cmd.Flags().IntVarP(&days, "days", "d", 30, "days to simulate")
	cmd.Flags().BoolVar(&table, "table", false, "print the cumulative total for every day")

	return cmd
}

// growthDaysCommand creates the days subcommand.
func (c *CLI) growthDaysCommand() *cobra.Command {
	var (
		probability float64
		target      float64
	)

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Find the first day the cumulative total reaches a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProbability(probability); err != nil {
				return err
			}

			days, err := growth.DaysToTarget(probability, target)
			if err != nil {
				return apperrors.Wrap(apperrors.Classify(err), err,
					"target of %.0f referrals at p=%g", target, probability)
			}
			printSuccess("Target of %.0f reached on day %d (p=%g)", target, days, probability)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&probability, "probability", "p", 0.1, "daily referral probability per active referrer")
	cmd.Flags().Float64VarP(&target, "target", "t", 0, "cumulative referral target (required)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// growthBonusCommand creates the bonus subcommand.
func (c *CLI) growthBonusCommand() *cobra.Command {
	var (
		days   int
		target float64
		pmax   float64
		scale  float64
		eps    float64
	)

	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Find the smallest referral bonus that hits a hiring target",
		Long: `Find the smallest referral bonus that hits a hiring target.

The bonus drives adoption through a saturating curve

    p(bonus) = pmax * (1 - exp(-bonus/scale))

so each extra dollar buys less probability than the last. The answer is
rounded up to a multiple of $10, matching how bonuses are granted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateProbability(pmax); err != nil {
				return err
			}
			if scale <= 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "scale must be positive, got %g", scale)
			}
			if days < 0 {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "days must be non-negative, got %d", days)
			}

			bonus, err := growth.MinBonusForTarget(days, target, adoptionCurve(pmax, scale), eps)
			if err != nil {
				return apperrors.Wrap(apperrors.Classify(err), err,
					"target of %.0f hires in %d days", target, days)
			}
			printSuccess("Minimum bonus: $%d for %.0f hires in %d days", bonus, target, days)
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 30, "hiring deadline in days")
	cmd.Flags().Float64VarP(&target, "target", "t", 0, "hiring target (required)")
	cmd.Flags().Float64Var(&pmax, "pmax", 1.0, "adoption probability ceiling")
	cmd.Flags().Float64Var(&scale, "scale", 1000, "bonus (in $) at which adoption reaches ~63% of pmax")
	cmd.Flags().Float64Var(&eps, "eps", 1e-3, "tolerance when comparing totals against the target")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// adoptionCurve returns a saturating bonus-to-probability curve.
// Probability rises steeply for small bonuses and flattens toward pmax.
func adoptionCurve(pmax, scale float64) growth.AdoptionFunc {
	return func(bonus int) float64 {
		return pmax * (1 - math.Exp(-float64(bonus)/scale))
	}
}

// validateProbability rejects probabilities outside [0, 1].
func validateProbability(p float64) error {
	if p < 0 || p > 1 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "probability must be in [0, 1], got %g", p)
	}
	return nil
}
