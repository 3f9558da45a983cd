package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/sheets"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("STUDMONEY_TEST_DIR", "/tmp/studmoney")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "tilde only", input: "~", expected: home},
		{name: "tilde prefix", input: "~/data/db.sqlite", expected: filepath.Join(home, "data", "db.sqlite")},
		{name: "env var", input: "$STUDMONEY_TEST_DIR/db", expected: "/tmp/studmoney/db"},
		{name: "absolute", input: "/var/lib/studmoney.db", expected: "/var/lib/studmoney.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestDirsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")

	assert.Equal(t, "/cfg/studmoney", Dir())
	assert.Equal(t, "/data/studmoney/studmoney.db", DefaultDatabasePath())
	assert.Equal(t, "/cfg/studmoney/sheets-token.json", SheetsTokenFile())
}

func TestLoadFromDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/data/studmoney/studmoney.db", cfg.DatabasePath)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "FCFA", cfg.Currency)
	assert.Equal(t, ThemeDefault, cfg.Theme)
	assert.Equal(t, 5, cfg.RecentLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromOverrides(t *testing.T) {
	v := viper.New()
	v.Set("storage.backend", "Memory")
	v.Set("database.path", "")
	v.Set("display.currency", "EUR")
	v.Set("display.theme", "catppuccin")
	v.Set("display.recent_limit", 10)
	v.Set("logging.format", "json")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, ThemeCatppuccin, cfg.Theme)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		value any
		name  string
		key   string
		field string
	}{
		{name: "unknown backend", key: "storage.backend", value: "postgres", field: "Backend"},
		{name: "unknown theme", key: "display.theme", value: "neon", field: "Theme"},
		{name: "zero recent limit", key: "display.recent_limit", value: 0, field: "RecentLimit"},
		{name: "empty currency", key: "display.currency", value: " ", field: "Currency"},
		{name: "sqlite without path", key: "database.path", value: "", field: "DatabasePath"},
		{name: "bad log level", key: "logging.level", value: "loud", field: "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := LoadFrom(v)
			require.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadSheetsConfig(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
		"GOOGLE_SHEETS_CLIENT_ID",
		"GOOGLE_SHEETS_CLIENT_SECRET",
		"GOOGLE_SHEETS_REFRESH_TOKEN",
		"GOOGLE_SHEETS_SPREADSHEET_ID",
		"GOOGLE_SHEETS_SPREADSHEET_NAME",
	} {
		t.Setenv(key, "")
	}

	t.Run("viper keys", func(t *testing.T) {
		v := viper.New()
		v.Set("sheets.client_id", "id")
		v.Set("sheets.client_secret", "secret")
		v.Set("sheets.refresh_token", "refresh")
		v.Set("sheets.spreadsheet_id", "sheet-123")
		v.Set("sheets.batch_size", 50)
		v.Set("sheets.retry_delay", "2s")
		v.Set("sheets.formatting", false)

		cfg, err := LoadSheetsConfig(v)
		require.NoError(t, err)
		assert.Equal(t, "id", cfg.ClientID)
		assert.Equal(t, "sheet-123", cfg.SpreadsheetID)
		assert.Equal(t, 50, cfg.BatchSize)
		assert.Equal(t, 2*time.Second, cfg.RetryDelay)
		assert.False(t, cfg.EnableFormatting)
		assert.Equal(t, sheets.DefaultSpreadsheetName, cfg.SpreadsheetName)
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/keys/sa.json")
		t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "Semester")

		cfg, err := LoadSheetsConfig(viper.New())
		require.NoError(t, err)
		assert.Equal(t, "/keys/sa.json", cfg.ServiceAccountPath)
		assert.Equal(t, "Semester", cfg.SpreadsheetName)
	})

	t.Run("no auth", func(t *testing.T) {
		_, err := LoadSheetsConfig(viper.New())
		assert.ErrorIs(t, err, sheets.ErrNoAuth)
	})
}
