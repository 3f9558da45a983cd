package config

import (
	"os"

	"github.com/Veraticus/studmoney/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads Google Sheets settings. Viper keys under sheets.*
// (config file or STUDMONEY_SHEETS_* env) take precedence over the plain
// GOOGLE_SHEETS_* environment variables.
func LoadSheetsConfig(v *viper.Viper) (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	fromViper := map[string]*string{
		"sheets.service_account_path": &config.ServiceAccountPath,
		"sheets.client_id":            &config.ClientID,
		"sheets.client_secret":        &config.ClientSecret,
		"sheets.refresh_token":        &config.RefreshToken,
		"sheets.spreadsheet_id":       &config.SpreadsheetID,
		"sheets.spreadsheet_name":     &config.SpreadsheetName,
		"sheets.timezone":             &config.TimeZone,
	}
	for key, dst := range fromViper {
		if val := v.GetString(key); val != "" {
			*dst = val
		}
	}

	fromEnv := map[string]*string{
		"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH": &config.ServiceAccountPath,
		"GOOGLE_SHEETS_CLIENT_ID":            &config.ClientID,
		"GOOGLE_SHEETS_CLIENT_SECRET":        &config.ClientSecret,
		"GOOGLE_SHEETS_REFRESH_TOKEN":        &config.RefreshToken,
		"GOOGLE_SHEETS_SPREADSHEET_ID":       &config.SpreadsheetID,
	}
	for key, dst := range fromEnv {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}
	if config.SpreadsheetName == sheets.DefaultSpreadsheetName {
		if name := os.Getenv("GOOGLE_SHEETS_SPREADSHEET_NAME"); name != "" {
			config.SpreadsheetName = name
		}
	}

	config.ServiceAccountPath = ExpandPath(config.ServiceAccountPath)

	if v.IsSet("sheets.batch_size") {
		config.BatchSize = v.GetInt("sheets.batch_size")
	}
	if v.IsSet("sheets.retry_attempts") {
		config.RetryAttempts = v.GetInt("sheets.retry_attempts")
	}
	if v.IsSet("sheets.retry_delay") {
		config.RetryDelay = v.GetDuration("sheets.retry_delay")
	}
	if v.IsSet("sheets.formatting") {
		config.EnableFormatting = v.GetBool("sheets.formatting")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
