package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/sheets"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDatabase(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "studmoney.db")
	viper.Set("storage.backend", "sqlite")
	viper.Set("database.path", path)
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := []string{"add", "list", "search", "budget", "summary", "breakdown",
		"export", "import", "auth", "dashboard", "migrate", "version"}

	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}

	for _, flag := range []string{"config", "log-level", "log-format", "db"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestAddListAndSearch(t *testing.T) {
	useTempDatabase(t)

	out, err := execute(t, addCmd(), "Lunch at canteen", "-a", "1500", "-c", "food", "--date", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch at canteen")
	assert.Contains(t, out, "1500.00 FCFA")

	_, err = execute(t, addCmd(), "Bus pass", "-a", "5000,50", "-c", "Transport", "--date", "2024-06-02", "-d", "monthly")
	require.NoError(t, err)

	out, err = execute(t, listCmd(), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Expenses (2 of 2)")
	assert.Contains(t, out, "Bus pass")
	assert.Contains(t, out, "5000.50 FCFA")

	out, err = execute(t, searchCmd(), "MONTHLY")
	require.NoError(t, err)
	assert.Contains(t, out, "Bus pass")
	assert.NotContains(t, out, "Lunch at canteen")

	out, err = execute(t, searchCmd(), "-c", "Food")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch at canteen")
	assert.NotContains(t, out, "Bus pass")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing title", args: []string{"-a", "100", "-c", "Food"}},
		{name: "zero amount", args: []string{"Snack", "-a", "0", "-c", "Food"}},
		{name: "unparseable amount", args: []string{"Snack", "-a", "ten", "-c", "Food"}},
		{name: "unknown category", args: []string{"Snack", "-a", "100", "-c", "Snacks"}},
		{name: "bad date", args: []string{"Snack", "-a", "100", "-c", "Food", "--date", "01/06/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempDatabase(t)

			_, err := execute(t, addCmd(), tt.args...)
			require.Error(t, err)

			out, err := execute(t, listCmd(), "--all")
			require.NoError(t, err)
			assert.Contains(t, out, "No expenses recorded.")
		})
	}
}

func TestSearchUnknownCategory(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, searchCmd(), "-c", "Snacks")
	assert.Error(t, err)
}

func TestBudgetSetAndShow(t *testing.T) {
	useTempDatabase(t)

	out, err := execute(t, budgetCmd(), "set", "100000", "-t", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "100000.00 FCFA")
	assert.Contains(t, out, "75%")

	out, err = execute(t, budgetCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "100000.00 FCFA")

	_, err = execute(t, budgetCmd(), "set", "-5")
	assert.Error(t, err)

	_, err = execute(t, budgetCmd(), "set", "-t", "150")
	assert.Error(t, err)

	_, err = execute(t, budgetCmd(), "set")
	assert.Error(t, err, "nothing to change")
}

func TestBudgetFractionalThreshold(t *testing.T) {
	useTempDatabase(t)

	out, err := execute(t, budgetCmd(), "set", "1,500.50", "-t", "82.5")
	require.NoError(t, err)
	assert.Contains(t, out, "1500.50 FCFA")
	assert.Contains(t, out, "alert at 82.5%")

	out, err = execute(t, budgetCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "82.5%")
	assert.NotContains(t, out, "83%")
}

func TestPreviewImportTrimsIDs(t *testing.T) {
	useTempDatabase(t)

	tracker, _, err := initTracker(context.Background())
	require.NoError(t, err)
	defer func() { _ = tracker.Close() }()

	_, err = tracker.AddExpense(context.Background(), model.ExpenseInput{
		ID: "abc", Title: "Lunch", Amount: decimal.NewFromInt(1500),
		Category: "Food", Date: "2024-06-01",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	previewImport(&buf, tracker, []model.ExpenseInput{{
		ID: " abc ", Title: "Lunch", Amount: decimal.NewFromInt(1500),
		Category: "Food", Date: "2024-06-01",
	}})
	assert.Contains(t, buf.String(), "0 would be imported, 1 already recorded")
}

func TestSummaryAndBreakdown(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, budgetCmd(), "set", "10000", "-t", "80")
	require.NoError(t, err)
	_, err = execute(t, addCmd(), "Rent share", "-a", "9000", "-c", "Housing", "--date", "2024-06-10")
	require.NoError(t, err)

	out, err := execute(t, summaryCmd(), "--at", "2024-06-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "1000.00 FCFA")

	_, err = execute(t, summaryCmd(), "--at", "June 15")
	assert.Error(t, err)

	out, err = execute(t, breakdownCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Housing")
	assert.Contains(t, out, "100.0%")
}

func TestExportAndImportJSON(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, addCmd(), "Notebook", "-a", "750", "-c", "Education", "--date", "2024-06-03")
	require.NoError(t, err)
	_, err = execute(t, addCmd(), "Cinema", "-a", "2000", "-c", "Leisure", "--date", "2024-06-04")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "backup.json")
	out, err := execute(t, exportCmd(), "json", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 expenses")
	require.FileExists(t, file)

	out, err = execute(t, importCmd(), "json", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 0 expenses")
	assert.Contains(t, out, "2 already recorded")

	useTempDatabase(t)

	out, err = execute(t, importCmd(), "json", file, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run: 2 would be imported")

	out, err = execute(t, listCmd(), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses recorded.")

	_, err = execute(t, importCmd(), "json", file)
	require.NoError(t, err)

	out, err = execute(t, listCmd(), "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Expenses (2 of 2)")
	assert.Contains(t, out, "Notebook")
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	useTempDatabase(t)

	file := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0600))

	_, err := execute(t, importCmd(), "json", file)
	assert.Error(t, err)
}

func TestExportReport(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, addCmd(), "Groceries", "-a", "3200", "-c", "Food")
	require.NoError(t, err)

	dir := t.TempDir()
	out, err := execute(t, exportCmd(), "report", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPublishReport(t *testing.T) {
	useTempDatabase(t)

	_, err := execute(t, addCmd(), "Pharmacy", "-a", "1200", "-c", "Health")
	require.NoError(t, err)

	tracker, _, err := initTracker(context.Background())
	require.NoError(t, err)
	defer func() { _ = tracker.Close() }()

	mock := sheets.NewMockWriter()
	require.NoError(t, publishReport(context.Background(), mock, tracker))
	require.Len(t, mock.Reports(), 1)
	report := mock.Last()
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "Pharmacy", report.Expenses[0].Title)
	assert.Equal(t, "FCFA", report.Currency)

	boom := errors.New("quota exceeded")
	mock.FailWith(boom)
	assert.ErrorIs(t, publishReport(context.Background(), mock, tracker), boom)
}

func TestExportSheets_RequiresConfiguration(t *testing.T) {
	useTempDatabase(t)
	for _, key := range []string{"GOOGLE_SHEETS_CLIENT_ID", "GOOGLE_SHEETS_CLIENT_SECRET",
		"GOOGLE_SHEETS_REFRESH_TOKEN", "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"} {
		t.Setenv(key, "")
	}

	_, err := execute(t, exportCmd(), "sheets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "studmoney auth sheets")
}

func TestMigrateStatus(t *testing.T) {
	useTempDatabase(t)

	out, err := execute(t, migrateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2")

	out, err = execute(t, migrateCmd(), "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema version: 2 (latest 2)")

	viper.Set("storage.backend", "memory")
	out, err = execute(t, migrateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "no schema to migrate")
}

func TestAuthSheets_RequiresCredentials(t *testing.T) {
	useTempDatabase(t)
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "")
	t.Setenv("GOOGLE_SHEETS_CLIENT_SECRET", "")

	_, err := execute(t, authCmd(), "sheets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials not found")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1500", want: "1500"},
		{input: " 1500.50 ", want: "1500.5"},
		{input: "1500,50", want: "1500.5"},
		{input: "1,500.50", want: "1500.5"},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), got.String())
		})
	}
}

func TestParseReference(t *testing.T) {
	now := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	got, err := parseReference("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = parseReference("2024-02-29", now)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 29, got.Day())

	_, err = parseReference("2023-02-29", now)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "default.json", outputPath("", "default.json"))
	assert.Equal(t, filepath.Join(dir, "default.json"), outputPath(dir, "default.json"))
	assert.Equal(t, filepath.Join(dir, "custom.json"), outputPath(filepath.Join(dir, "custom.json"), "default.json"))
}
