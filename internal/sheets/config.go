// Package sheets exports monthly budget reports to Google Sheets.
package sheets

import (
	"errors"
	"os"
	"time"
)

// Configuration errors.
var (
	ErrNoAuth        = errors.New("no authentication method configured")
	ErrMultipleAuth  = errors.New("multiple authentication methods configured; use either OAuth2 or service account")
	ErrBatchSize     = errors.New("batch size must be positive")
	ErrRetryAttempts = errors.New("retry attempts cannot be negative")
	ErrRetryDelay    = errors.New("retry delay cannot be negative")
)

// DefaultSpreadsheetName is used when creating a new spreadsheet.
const DefaultSpreadsheetName = "StudMoney Budget"

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TimeZone           string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
	EnableFormatting   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableFormatting: true,
		SpreadsheetName:  DefaultSpreadsheetName,
		TimeZone:         "UTC",
		BatchSize:        500,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
	}
}

// LoadFromEnv overlays GOOGLE_SHEETS_* environment variables.
func (c *Config) LoadFromEnv() error {
	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&c.ClientID, "GOOGLE_SHEETS_CLIENT_ID")
	setIfPresent(&c.ClientSecret, "GOOGLE_SHEETS_CLIENT_SECRET")
	setIfPresent(&c.RefreshToken, "GOOGLE_SHEETS_REFRESH_TOKEN")
	setIfPresent(&c.ServiceAccountPath, "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	setIfPresent(&c.SpreadsheetID, "GOOGLE_SHEETS_SPREADSHEET_ID")
	setIfPresent(&c.SpreadsheetName, "GOOGLE_SHEETS_SPREADSHEET_NAME")

	if !c.hasServiceAccount() && !c.hasOAuth() {
		return ErrNoAuth
	}
	if c.SpreadsheetName == "" {
		c.SpreadsheetName = DefaultSpreadsheetName
	}
	return nil
}

func (c *Config) hasOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

func (c *Config) hasServiceAccount() bool {
	return c.ServiceAccountPath != ""
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.hasOAuth()
	hasServiceAccount := c.hasServiceAccount()

	if !hasOAuth && !hasServiceAccount {
		return ErrNoAuth
	}
	if hasOAuth && hasServiceAccount {
		return ErrMultipleAuth
	}
	if c.BatchSize <= 0 {
		return ErrBatchSize
	}
	if c.RetryAttempts < 0 {
		return ErrRetryAttempts
	}
	if c.RetryDelay < 0 {
		return ErrRetryDelay
	}
	return nil
}
