package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Display themes.
const (
	ThemeDefault    = "default"
	ThemeCatppuccin = "catppuccin"
)

// Config is the validated application configuration.
type Config struct {
	DatabasePath string `mapstructure:"database_path" validate:"required_if=Backend sqlite"`
	Backend      string `mapstructure:"backend" validate:"oneof=sqlite memory"`
	Currency     string `mapstructure:"currency" validate:"required,max=8"`
	Theme        string `mapstructure:"theme" validate:"oneof=default catppuccin"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat    string `mapstructure:"log_format" validate:"oneof=console json"`
	RecentLimit  int    `mapstructure:"recent_limit" validate:"gte=1,lte=100"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("display.currency", model.DefaultCurrency)
	v.SetDefault("display.recent_limit", 5)
	v.SetDefault("display.theme", ThemeDefault)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration from v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString("database.path")),
		Backend:      strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
		Currency:     strings.TrimSpace(v.GetString("display.currency")),
		Theme:        strings.ToLower(strings.TrimSpace(v.GetString("display.theme"))),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("logging.level"))),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString("logging.format"))),
		RecentLimit:  v.GetInt("display.recent_limit"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field, reporting all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(msgs, "; "))
}
