package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "teachdesk.db", cfg.Database.Path)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, 1500*time.Millisecond, cfg.Generator.Delay)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "database path override",
			envVars: map[string]string{
				"DATABASE_PATH": "/tmp/custom.db",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
			},
		},
		{
			name: "export dir override",
			envVars: map[string]string{
				"EXPORT_DIR": "/tmp/out",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/out", cfg.Export.Dir)
			},
		},
		{
			name: "generator delay override",
			envVars: map[string]string{
				"GENERATOR_DELAY": "0s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, time.Duration(0), cfg.Generator.Delay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}
