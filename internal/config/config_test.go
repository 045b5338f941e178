package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, int64(1), cfg.Fixture.Seed)
	assert.Equal(t, 7, cfg.Fixture.CustomerCount)
	assert.Equal(t, 15, cfg.Fixture.LoanCount)
	assert.Equal(t, "LOAN_OFFICER", cfg.Session.DefaultRole)
	assert.Equal(t, "exports", cfg.Export.OutputDir)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, `
fixture:
  seed: 99
  customer_count: 3
  loan_count: 50
session:
  default_role: ADMIN
logger:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Fixture.Seed)
	assert.Equal(t, 3, cfg.Fixture.CustomerCount)
	assert.Equal(t, 50, cfg.Fixture.LoanCount)
	assert.Equal(t, "ADMIN", cfg.Session.DefaultRole)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "exports", cfg.Export.OutputDir, "unset sections keep defaults")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero loan count", "fixture:\n  loan_count: 0\n"},
		{"negative customer count", "fixture:\n  customer_count: -2\n"},
		{"unknown role", "session:\n  default_role: WIZARD\n"},
		{"empty output dir", "export:\n  output_dir: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
