package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/config"
	"github.com/Veraticus/studmoney/internal/engine"
	"github.com/Veraticus/studmoney/internal/export"
	"github.com/Veraticus/studmoney/internal/service"
	"github.com/Veraticus/studmoney/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses and reports",
		Long: `Export your data.

  json    every expense, re-importable with 'studmoney import json'
  report  a plain-text report of the current month
  sheets  the current month's report to Google Sheets`,
	}

	cmd.PersistentFlags().StringP("output", "o", "", "output file or directory (default: dated file in the current directory)")

	cmd.AddCommand(exportJSONCmd())
	cmd.AddCommand(exportReportCmd())
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Export all expenses as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := initTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			output, _ := cmd.Flags().GetString("output")
			path := outputPath(output, export.JSONFilename(tracker.Now()))

			expenses := tracker.GetExpenses()
			if err := writeFile(path, func(f *os.File) error { return export.WriteJSON(f, expenses) }); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(expenses), path)))
			return nil
		},
	}
}

func exportReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write a text report of the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := initTracker(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			now := tracker.Now()
			output, _ := cmd.Flags().GetString("output")
			path := outputPath(output, export.ReportFilename(now))

			report := tracker.BuildReport(now)
			if err := writeFile(path, func(f *os.File) error { return export.WriteReport(f, report) }); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Report written to %s", path)))
			return nil
		},
	}
}

func exportSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Export the current month's report to Google Sheets",
		Long: `Export the current month's report to Google Sheets.

Authenticate first with 'studmoney auth sheets', or configure a service
account key under sheets.service_account_path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsCfg, err := config.LoadSheetsConfig(viper.GetViper())
			if err != nil {
				return common.NewUserError("Google Sheets is not configured; run 'studmoney auth sheets' first", err)
			}

			tracker, _, err := initTracker(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = tracker.Close() }()

			writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
			if err != nil {
				return err
			}

			if err := publishReport(ctx, writer, tracker); err != nil {
				return fmt.Errorf("sheets export failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Report exported to Google Sheets"))
			return nil
		},
	}
}

// publishReport sends the current month's report to w.
func publishReport(ctx context.Context, w service.ReportWriter, tracker *engine.Tracker) error {
	report := tracker.BuildReport(tracker.Now())
	common.LogDebug("Publishing report", common.Fields{
		"expenses": len(report.Expenses),
		"start":    report.Period.Start.String(),
	})
	return w.Write(ctx, report)
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
