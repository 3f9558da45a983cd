package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetTitle is the tab the report is written to.
const SheetTitle = "Budget"

// ErrNoReport is returned when Write is given a nil report.
var ErrNoReport = errors.New("no report to write")

// Writer implements service.ReportWriter for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Write replaces the sheet's content with the report.
func (w *Writer) Write(ctx context.Context, report *service.Report) error {
	if report == nil {
		return ErrNoReport
	}

	w.logger.Info("starting report export",
		"expenses", len(report.Expenses),
		"period", fmt.Sprintf("%s to %s", report.Period.Start, report.Period.End))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := w.prepareReportData(report)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return classifyAPIError(w.writeData(ctx, spreadsheetID, values))
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if w.config.EnableFormatting {
		err = common.WithRetry(ctx, func() error {
			return classifyAPIError(w.applyFormatting(ctx, spreadsheetID, len(values), report.Currency))
		}, retryOpts)
		if err != nil {
			// Data is already written
			w.logger.Warn("failed to apply formatting", "error", err)
		}
	}

	w.logger.Info("report export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// classifyAPIError tells the retry loop how to treat a Sheets API failure:
// 429 waits for the quota window, other 4xx responses cannot succeed on retry.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
	case apiErr.Code >= 400 && apiErr.Code < 500:
		return common.Permanent(err)
	default:
		return err
	}
}

// createSheetsService authenticates with a service account key or an
// OAuth2 refresh token.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := newOAuthConfig(config.ClientID, config.ClientSecret, "")
		tokenSource = oauthConfig.TokenSource(ctx, &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		})
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: SheetTitle,
				},
			},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareReportData lays out the summary, category breakdown and expense
// details. Amounts always sit in column C.
func (w *Writer) prepareReportData(report *service.Report) [][]any {
	// Header(2) + Summary(7) + Category header(2) + categories + empty(2) + details header(2) + expenses
	estimatedRows := 15 + len(report.ByCategory) + len(report.Expenses)
	values := make([][]any, 0, estimatedRows)

	values = append(values,
		[]any{
			"StudMoney Budget Report",
			fmt.Sprintf("%s - %s", report.Period.Start.Format("Jan 2, 2006"), report.Period.End.Format("Jan 2, 2006")),
		},
		[]any{},
		[]any{"Summary"},
		[]any{"Total Budget", "", report.Budget.TotalBudget.InexactFloat64()},
		[]any{"Spent This Month", "", report.MonthTotal.InexactFloat64()},
		[]any{"Remaining", "", report.Remaining.InexactFloat64()},
		[]any{"Percent Used", fmt.Sprintf("%.1f%%", report.UsagePercent)},
		[]any{"Alert Threshold", fmt.Sprintf("%.1f%%", report.Budget.AlertThreshold)},
		[]any{"Expenses", len(report.Expenses)},
		[]any{},
		[]any{"Category Breakdown"},
		[]any{"Category", "Count", "Amount", "Share %"},
	)

	for _, cs := range report.ByCategory {
		values = append(values, NewCategoryRow(cs, report.MonthTotal).Values())
	}

	values = append(values,
		[]any{},
		[]any{},
		[]any{"Expense Details"},
		[]any{"Date", "Title", "Amount", "Category", "Description"},
	)

	// Ledger order, most recently added first
	for _, e := range report.Expenses {
		values = append(values, NewExpenseRow(e).Values())
	}

	return values
}

// writeData writes the rows in batches to stay under API limits.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for i := 0; i < len(values); i += w.config.BatchSize {
		end := min(i+w.config.BatchSize, len(values))

		batch := values[i:end]
		valueRange := &sheets.ValueRange{
			Values: batch,
		}

		rangeStr := fmt.Sprintf("A%d", i+1)
		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStr, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "start_row", i+1, "rows", len(batch))
	}

	return nil
}

// currencyPattern renders amounts like `150,000.00 "FCFA"`.
func currencyPattern(currency string) string {
	if currency == "" {
		return "#,##0.00"
	}
	return fmt.Sprintf(`#,##0.00 "%s"`, currency)
}

// gridRange spans rows [startRow, endRow) and columns [startCol, endCol) of the first sheet.
func gridRange(startRow, endRow, startCol, endCol int) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          0,
		StartRowIndex:    int64(startRow),
		EndRowIndex:      int64(endRow),
		StartColumnIndex: int64(startCol),
		EndColumnIndex:   int64(endCol),
	}
}

func repeatCell(r *sheets.GridRange, format *sheets.CellFormat, fields string) *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range:  r,
			Cell:   &sheets.CellData{UserEnteredFormat: format},
			Fields: fields,
		},
	}
}

// formattingRequests styles the title, bolds the label column, formats the
// amount column as currency and freezes the title row.
func (w *Writer) formattingRequests(totalRows int, currency string) []*sheets.Request {
	return []*sheets.Request{
		repeatCell(gridRange(0, 1, 0, 2),
			&sheets.CellFormat{TextFormat: &sheets.TextFormat{Bold: true, FontSize: 16}},
			"userEnteredFormat.textFormat"),
		repeatCell(gridRange(2, totalRows, 0, 1),
			&sheets.CellFormat{TextFormat: &sheets.TextFormat{Bold: true}},
			"userEnteredFormat.textFormat"),
		repeatCell(gridRange(0, totalRows, 2, 3),
			&sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "NUMBER", Pattern: currencyPattern(currency)}},
			"userEnteredFormat.numberFormat"),
		{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    0,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   5,
				},
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId:        0,
					GridProperties: &sheets.GridProperties{FrozenRowCount: 1},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}
}

func (w *Writer) applyFormatting(ctx context.Context, spreadsheetID string, totalRows int, currency string) error {
	batchUpdate := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: w.formattingRequests(totalRows, currency),
	}

	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, batchUpdate).Context(ctx).Do()
	return err
}
