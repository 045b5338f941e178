package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/loanflow/loanflow/internal/domain/navigation"
)

// Config holds all application configuration
type Config struct {
	Fixture FixtureConfig `mapstructure:"fixture"`
	Session SessionConfig `mapstructure:"session"`
	Export  ExportConfig  `mapstructure:"export"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

// FixtureConfig controls the synthetic dataset generated at startup
type FixtureConfig struct {
	Seed          int64 `mapstructure:"seed"`
	CustomerCount int   `mapstructure:"customer_count"`
	LoanCount     int   `mapstructure:"loan_count"`
}

// SessionConfig controls the simulated login session
type SessionConfig struct {
	DefaultRole string `mapstructure:"default_role"`
}

// ExportConfig controls loan list exports
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables. A missing
// config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("LOANFLOW")
	viper.AutomaticEnv()

	setDefaults()

	if _, err := os.Stat(configPath); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("fixture.seed", 1)
	viper.SetDefault("fixture.customer_count", 7)
	viper.SetDefault("fixture.loan_count", 15)

	viper.SetDefault("session.default_role", string(navigation.RoleLoanOfficer))

	viper.SetDefault("export.output_dir", "exports")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stderr")
	viper.SetDefault("logger.format", "console")
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Fixture.CustomerCount <= 0 {
		return fmt.Errorf("fixture.customer_count must be positive, got %d", c.Fixture.CustomerCount)
	}
	if c.Fixture.LoanCount <= 0 {
		return fmt.Errorf("fixture.loan_count must be positive, got %d", c.Fixture.LoanCount)
	}
	if !navigation.Role(c.Session.DefaultRole).IsValid() {
		return fmt.Errorf("session.default_role %q is not a known role", c.Session.DefaultRole)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir must not be empty")
	}
	return nil
}
