package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearRelayEnv keeps ambient environment variables from leaking into a
// test's view of the configuration.
func clearRelayEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"RELAY_HTTP_PORT",
		"LOG_LEVEL",
		"RELAY_STATIC_DIR",
		"GRAPHDB_URL",
		"GRAPHDB_REPOSITORY",
		"GRAPHDB_QUERY_TIMEOUT",
		"TIMEOUT_SHUTDOWN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearRelayEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "http://localhost:7200", cfg.GraphDB.URL)
	assert.Equal(t, "kgsde-proj", cfg.GraphDB.Repository)
	assert.Equal(t, 30*time.Second, cfg.GraphDB.QueryTimeout)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.ShutdownTimeout)
	assert.Equal(t, ":8000", cfg.GetHTTPAddr())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearRelayEnv(t)
	t.Setenv("RELAY_HTTP_PORT", "9001")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GRAPHDB_URL", "http://graphdb.internal:7200")
	t.Setenv("GRAPHDB_REPOSITORY", "experiments")
	t.Setenv("GRAPHDB_QUERY_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://graphdb.internal:7200", cfg.GraphDB.URL)
	assert.Equal(t, "experiments", cfg.GraphDB.Repository)
	assert.Equal(t, 5*time.Second, cfg.GraphDB.QueryTimeout)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	clearRelayEnv(t)
	t.Setenv("RELAY_HTTP_PORT", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPPort:  8000,
			LogLevel:  "info",
			StaticDir: "static",
			GraphDB: GraphDBConfig{
				URL:          "http://localhost:7200",
				Repository:   "kgsde-proj",
				QueryTimeout: 30 * time.Second,
			},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.HTTPPort = 70000
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.GraphDB.URL = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.GraphDB.Repository = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.GraphDB.QueryTimeout = 0
	assert.Error(t, cfg.Validate())
}
