package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/Veraticus/studmoney/internal/cli"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/config"
	"github.com/Veraticus/studmoney/internal/engine"
	"github.com/Veraticus/studmoney/internal/export"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import expenses from a JSON export or bank statements",
	}

	cmd.PersistentFlags().BoolP("dry-run", "d", false, "preview the import without saving")

	cmd.AddCommand(importJSONCmd())
	cmd.AddCommand(importOFXCmd())

	return cmd
}

func importJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json [file]",
		Short: "Import a studmoney JSON export",
		Long: `Import expenses from a file written by 'studmoney export json'.

Expenses whose id is already recorded are skipped, so importing the same
file twice is harmless.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(config.ExpandPath(args[0])) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			inputs, err := export.ReadJSON(f)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("%s is not a studmoney export", filepath.Base(args[0])), err)
			}

			return runImport(cmd, inputs)
		},
	}
}

func importOFXCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ofx [files...]",
		Short: "Import debits from OFX/QFX bank statements",
		Long: `Import spending from OFX or QFX files downloaded from your bank.

Only debits are imported; deposits and transfers in are skipped. Categories
are guessed from the payee; anything unrecognized is filed under Other.

Examples:
  studmoney import ofx ~/Downloads/statement.ofx
  studmoney import ofx ~/Downloads/*.qfx --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandFiles(args)
			if err != nil {
				return err
			}

			parser := ofx.NewParser()
			var inputs []model.ExpenseInput
			for _, path := range files {
				parsed, parseErr := parseOFXFile(cmd.Context(), parser, path)
				if parseErr != nil {
					common.LogError(parseErr, "Failed to parse OFX file", common.Fields{"file": path})
					continue
				}
				common.LogInfo("Parsed statement", common.Fields{"file": filepath.Base(path), "debits": len(parsed)})
				inputs = append(inputs, parsed...)
			}

			if len(inputs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning("No debits found to import"))
				return nil
			}
			return runImport(cmd, inputs)
		},
	}
}

func parseOFXFile(ctx context.Context, parser *ofx.Parser, path string) ([]model.ExpenseInput, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return parser.ParseFile(ctx, f)
}

// expandFiles expands glob patterns, keeping plain paths that exist.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		pattern = config.ExpandPath(pattern)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			common.LogWarn("No files found matching pattern", common.Fields{"pattern": pattern})
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files found to import")
	}
	return files, nil
}

func runImport(cmd *cobra.Command, inputs []model.ExpenseInput) error {
	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	tracker, _, err := initTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = tracker.Close() }()

	if dryRun {
		previewImport(out, tracker, inputs)
		return nil
	}

	var processed atomic.Int64
	handler := cli.NewInterruptHandler(out)
	ctx, stop := handler.Watch(cmd.Context(), "Import", func() string {
		return fmt.Sprintf("%d of %d entries processed and saved; run the import again to finish.",
			processed.Load(), len(inputs))
	})
	defer stop()

	bar := newImportBar(out, len(inputs))
	result, err := tracker.ImportExpenses(ctx, inputs, func(done int) {
		processed.Store(int64(done))
		_ = bar.Add(1)
	})
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return err
	}

	reportImport(out, result)
	return nil
}

func newImportBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[green][bold]Importing expenses...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}

func reportImport(w io.Writer, result engine.ImportResult) {
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Imported %d expenses", result.Added)))
	if result.Duplicates > 0 {
		fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("%d already recorded, skipped", result.Duplicates)))
	}
	for _, f := range result.Failures {
		fmt.Fprintln(w, cli.FormatError(fmt.Sprintf("#%d %q: %v", f.Index+1, f.Title, f.Err)))
	}
}

func previewImport(w io.Writer, tracker *engine.Tracker, inputs []model.ExpenseInput) {
	var valid, duplicates int
	for i, in := range inputs {
		in.Normalize()
		if in.ID != "" && tracker.HasExpense(in.ID) {
			duplicates++
			continue
		}
		if err := in.Validate(); err != nil {
			fmt.Fprintln(w, cli.FormatError(fmt.Sprintf("#%d %q: %v", i+1, in.Title, err)))
			continue
		}
		valid++
		fmt.Fprintf(w, "  %s  %-28s %-10s %s\n", in.Date, in.Title, in.Category,
			model.FormatAmount(in.Amount, tracker.Currency()))
	}

	fmt.Fprintln(w, cli.FormatInfo(fmt.Sprintf("Dry run: %d would be imported, %d already recorded; nothing saved", valid, duplicates)))
}
