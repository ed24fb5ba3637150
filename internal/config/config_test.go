package config

import (
	"os"
	"testing"
	"time"

	"github.com/inovacc/repogallery/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the caller's REPOGALLERY_* variables and .env file
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())

	for _, key := range []string{"OWNER", "API_URL", "TIMEOUT", "ADDR", "LOG_LEVEL", "LOG_FORMAT"} {
		name := "REPOGALLERY_" + key
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultOwner, cfg.Owner)
	assert.Equal(t, "https://api.github.com/", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)

	t.Setenv("REPOGALLERY_OWNER", "octocat")
	t.Setenv("REPOGALLERY_API_URL", "https://ghe.example.test/api/v3/")
	t.Setenv("REPOGALLERY_TIMEOUT", "5s")
	t.Setenv("REPOGALLERY_ADDR", ":9090")
	t.Setenv("REPOGALLERY_LOG_LEVEL", "debug")
	t.Setenv("REPOGALLERY_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Owner:     "octocat",
		APIURL:    "https://ghe.example.test/api/v3/",
		Timeout:   5 * time.Second,
		Addr:      ":9090",
		LogLevel:  "debug",
		LogFormat: "json",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_BuildTimeOwner(t *testing.T) {
	clearEnv(t)

	previous := DefaultOwner
	DefaultOwner = "baked-in"
	t.Cleanup(func() { DefaultOwner = previous })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "baked-in", cfg.Owner)
}

func TestConfig_ValidateMatchesLoader(t *testing.T) {
	cfg := Config{Owner: "octocat", APIURL: "ghe.example.test/api/v3", LogLevel: "info", LogFormat: "text"}

	_, loaderErr := loader.ParseBaseURL(cfg.APIURL)
	require.Error(t, loaderErr)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, loaderErr.Error(), err.Error())
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("REPOGALLERY_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Owner:     "octocat",
		APIURL:    "https://api.github.com/",
		Timeout:   time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing owner", func(c *Config) { c.Owner = "  " }, "no account configured"},
		{"relative api url", func(c *Config) { c.APIURL = "api.github.com" }, "invalid API base URL"},
		{"api url with bad escape", func(c *Config) { c.APIURL = "https://api.github.com/%zz" }, "invalid API base URL"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "invalid timeout"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"upper-case level", func(c *Config) { c.LogLevel = "WARN" }, ""},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)

	require.NoError(t, os.WriteFile(".env", []byte("REPOGALLERY_OWNER=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("REPOGALLERY_OWNER") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Owner)
}
