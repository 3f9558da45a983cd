package main

import (
	"fmt"

	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or change the monthly budget",
	}

	cmd.AddCommand(budgetShowCmd())
	cmd.AddCommand(budgetSetCmd())

	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := initTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			b := tracker.GetBudget()
			content := fmt.Sprintf("Monthly budget   %s\nAlert threshold  %g%%",
				model.FormatAmount(b.TotalBudget, tracker.Currency()), b.AlertThreshold)
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.MoneyIcon+" Budget", content))
			return nil
		},
	}
}

func budgetSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [amount]",
		Short: "Set the monthly budget",
		Long: `Set the monthly budget and, optionally, the alert threshold.

Examples:
  studmoney budget set 150000
  studmoney budget set 150000 --threshold 75
  studmoney budget set --threshold 90`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBudgetSet,
	}

	cmd.Flags().Float64P("threshold", "t", -1, "alert threshold in percent (0-100)")

	return cmd
}

func runBudgetSet(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if len(args) == 0 && !cmd.Flags().Changed("threshold") {
		return fmt.Errorf("give an amount, a --threshold, or both")
	}

	tracker, _, err := initTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	in := tracker.GetBudget().Input()
	if len(args) > 0 {
		amount, parseErr := parseAmount(args[0])
		if parseErr != nil {
			return parseErr
		}
		in.TotalBudget = amount
	}
	if cmd.Flags().Changed("threshold") {
		in.AlertThreshold = threshold
	}

	b, err := tracker.UpdateBudget(cmd.Context(), in)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Budget set to %s, alert at %g%%",
		model.FormatAmount(b.TotalBudget, tracker.Currency()), b.AlertThreshold)))
	return nil
}
