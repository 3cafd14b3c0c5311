package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "SQLITE_PATH", "MAX_TASK_ENTRIES", "SEED_TASKS", "TRUSTED_PROXIES"} {
		t.Setenv(key, "")
	}
	t.Setenv("DB_DRIVER", "mysql")

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, DriverMySQL, cfg.DbDriver)
	assert.Equal(t, DefaultMaxTaskEntries, cfg.MaxTaskEntries)
	assert.True(t, cfg.SeedTasks)
	assert.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "tasks-api")
	t.Setenv("APP_VERSION", "1.4.2")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("MAX_TASK_ENTRIES", "5")
	t.Setenv("SEED_TASKS", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

	cfg := LoadConfig()

	assert.Equal(t, "tasks-api", cfg.AppName)
	assert.Equal(t, "1.4.2", cfg.AppVersion)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, DriverSQLite, cfg.DbDriver)
	assert.Equal(t, ":memory:", cfg.SqlitePath)
	assert.Equal(t, 5, cfg.MaxTaskEntries)
	assert.False(t, cfg.SeedTasks)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestParseMaxTaskEntries(t *testing.T) {
	tests := map[string]int{
		"":     DefaultMaxTaskEntries,
		"abc":  DefaultMaxTaskEntries,
		"0":    DefaultMaxTaskEntries,
		"-3":   DefaultMaxTaskEntries,
		" 42 ": 42,
	}
	for input, want := range tests {
		assert.Equal(t, want, parseMaxTaskEntries(input), "input %q", input)
	}
}
