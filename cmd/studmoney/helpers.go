package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/config"
	"github.com/Veraticus/studmoney/internal/engine"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/service"
	"github.com/Veraticus/studmoney/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// openStore opens the configured key-value backend, migrating SQLite databases.
func openStore(ctx context.Context, cfg *config.Config) (service.KeyValueStore, error) {
	if cfg.Backend == config.BackendMemory {
		common.LogWarn("Using in-memory storage; nothing will be saved", nil)
		return storage.NewMemoryStorage(), nil
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initTracker loads the configuration and opens a ready tracker.
// Callers must Close it.
func initTracker(ctx context.Context) (*engine.Tracker, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, common.NewUserError("Could not open the expense database", err)
	}

	adapter, err := storage.NewAdapter(store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	tracker := engine.New(adapter, engine.WithCurrency(cfg.Currency))
	if err := tracker.Open(ctx); err != nil {
		_ = tracker.Close()
		return nil, nil, fmt.Errorf("failed to load data: %w", err)
	}

	return tracker, cfg, nil
}

// parseAmount accepts "1500", "1500.50", "1500,50" or "1,500.50".
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := model.ParseAmount(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// parseReference parses --at, defaulting to now.
func parseReference(at string, now time.Time) (time.Time, error) {
	if at == "" {
		return now, nil
	}
	d, err := model.ParseDate(at)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}

// outputPath resolves where an export is written. An existing directory
// receives the default filename.
func outputPath(output, defaultName string) string {
	if output == "" {
		return defaultName
	}
	output = config.ExpandPath(output)
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, defaultName)
	}
	return output
}

// saveConfig writes the in-memory viper settings back to the config file.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(config.Dir(), "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0750); err != nil {
		return err
	}

	return viper.WriteConfigAs(configFile)
}
