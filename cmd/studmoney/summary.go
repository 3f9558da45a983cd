package main

import (
	"fmt"

	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show today's, this week's and this month's spending against the budget",
		RunE:  runSummary,
	}

	cmd.Flags().String("at", "", "reference date, YYYY-MM-DD (default: today)")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	tracker, _, err := initTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	at, _ := cmd.Flags().GetString("at")
	ref, err := parseReference(at, tracker.Now())
	if err != nil {
		return err
	}

	summary := tracker.ComputeDashboardSummary(ref)
	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(summary, tracker.GetBudget(), tracker.Currency()))
	return nil
}

func breakdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show spending per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := initTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Spending by category"))
			return cli.WriteBreakdown(out, tracker.ComputeCategoryBreakdown(), tracker.Currency())
		},
	}
}
