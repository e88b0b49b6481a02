package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/madisonbullard/mcp-server-shortcut/config"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("TEST_SHORTCUT_TOKEN", "secret-token")

	cfg, err := config.Load("testdata/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "https://api.app.shortcut.com/api/v3", cfg.Shortcut.BaseURL)
	assert.Equal(t, "secret-token", cfg.Shortcut.Token)
	assert.Equal(t, 50, cfg.Shortcut.SearchPageSize)
	assert.Equal(t, "shortcut-test", cfg.Server.Name)
	assert.Equal(t, "1.2.3", cfg.Server.Version)
	assert.Equal(t, config.TransportHTTP, cfg.Server.Transport)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, "/shortcut", cfg.Server.HTTPEndpoint)
	assert.Equal(t, "DEBUG", cfg.Log.Level)

	d, err := cfg.Shortcut.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(config.EnvToken, "env-token")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, shortcut.DefaultBaseURL, cfg.Shortcut.BaseURL)
	assert.Equal(t, "env-token", cfg.Shortcut.Token)
	assert.Equal(t, shortcut.DefaultSearchPageSize, cfg.Shortcut.SearchPageSize)
	assert.Equal(t, config.DefaultServerName, cfg.Server.Name)
	assert.Equal(t, config.TransportStdio, cfg.Server.Transport)
	assert.Equal(t, config.DefaultHTTPAddr, cfg.Server.HTTPAddr)
	assert.Equal(t, config.DefaultHTTPEndpoint, cfg.Server.HTTPEndpoint)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)

	d, err := cfg.Shortcut.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTimeout, d)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(config.EnvToken, "")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "Token")

	_, err = config.Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config testdata/missing.yaml")

	_, err = config.Load("testdata/invalid.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transport")

	c := &config.Shortcut{Timeout: "soon"}
	_, err = c.RequestTimeout()
	assert.Error(t, err)

	c.Timeout = "-1s"
	_, err = c.RequestTimeout()
	assert.EqualError(t, err, "invalid config: shortcut.timeout must be positive: -1s")
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("TEST_DOTENV_TOKEN", "")
	require.NoError(t, os.Unsetenv("TEST_DOTENV_TOKEN"))

	require.NoError(t, config.LoadDotEnv("testdata/test.env"))
	assert.Equal(t, "from-dotenv", os.Getenv("TEST_DOTENV_TOKEN"))

	assert.Error(t, config.LoadDotEnv("testdata/missing.env"))
	// no .env in the package directory
	assert.NoError(t, config.LoadDotEnv())
}
