package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Record an expense",
		Long: `Record a new expense.

Examples:
  studmoney add "Lunch at the canteen" --amount 1500 --category Food
  studmoney add "Bus pass" -a 5000 -c Transport --date 2024-06-01
  studmoney add -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringP("amount", "a", "", "amount spent (e.g. 1500 or 1500.50)")
	cmd.Flags().StringP("category", "c", "", "category (Food, Transport, Housing, Education, Health, Leisure, Other)")
	cmd.Flags().String("date", "", "date of the expense, YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("description", "d", "", "optional note")
	cmd.Flags().BoolP("interactive", "i", false, "prompt for missing fields")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	tracker, _, err := initTracker(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	amountFlag, _ := cmd.Flags().GetString("amount")
	category, _ := cmd.Flags().GetString("category")
	date, _ := cmd.Flags().GetString("date")
	description, _ := cmd.Flags().GetString("description")
	interactive, _ := cmd.Flags().GetBool("interactive")

	in := model.ExpenseInput{
		Category:    category,
		Date:        date,
		Description: description,
	}
	if len(args) > 0 {
		in.Title = args[0]
	}
	if amountFlag != "" {
		amount, parseErr := parseAmount(amountFlag)
		if parseErr != nil {
			return parseErr
		}
		in.Amount = amount
	}

	if interactive {
		prompter := cli.NewExpensePrompter(os.Stdin, out, tracker.Now())
		in, err = prompter.PromptExpense(ctx, in)
		if err != nil {
			if errors.Is(err, cli.ErrInputCancelled) {
				fmt.Fprintln(out, cli.FormatWarning("Cancelled, nothing was saved"))
				return nil
			}
			return err
		}
	} else if in.Date == "" {
		in.Date = model.DateOf(tracker.Now()).String()
	}

	expense, err := tracker.AddExpense(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Added %s %s: %s on %s",
		expense.Category.Icon(), expense.Title,
		model.FormatAmount(expense.Amount, tracker.Currency()), expense.Date)))

	summary := tracker.ComputeDashboardSummary(tracker.Now())
	if summary.Alert.Visible() {
		fmt.Fprintln(out, cli.SeverityStyle(summary.Alert.Level.Severity()).Render(summary.Alert.Message))
	}
	return nil
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses, newest first",
		RunE:  runList,
	}

	cmd.Flags().IntP("limit", "n", 0, "show only the N most recent expenses (default: display.recent_limit)")
	cmd.Flags().Bool("all", false, "show every expense")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	tracker, cfg, err := initTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	all, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.RecentLimit
	}

	expenses := tracker.GetExpenses()
	if !all {
		expenses = tracker.RecentExpenses(limit)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Expenses (%d of %d)", len(expenses), len(tracker.GetExpenses()))))
	return cli.WriteExpenseTable(out, expenses, tracker.Currency())
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search expenses by title or description",
		Long: `Search expenses by a case-insensitive term in the title or description,
optionally restricted to one category.

Examples:
  studmoney search lunch
  studmoney search --category Transport
  studmoney search book -c Education`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringP("category", "c", "", "only show this category")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	var term string
	if len(args) > 0 {
		term = args[0]
	}

	var category model.Category
	if flag, _ := cmd.Flags().GetString("category"); flag != "" {
		parsed, ok := model.ParseCategory(flag)
		if !ok {
			return common.NewUserError(fmt.Sprintf("Unknown category %q", flag), nil)
		}
		category = parsed
	}

	tracker, _, err := initTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	found := tracker.SearchExpenses(term, category)

	out := cmd.OutOrStdout()
	if err := cli.WriteExpenseTable(out, found, tracker.Currency()); err != nil {
		return err
	}
	if len(found) > 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("%d found, total %s",
			len(found), model.FormatAmount(aggregate.Total(found), tracker.Currency()))))
	}
	return nil
}
