package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

var configKeys = []string{
	"APP_NAME", "PORT", "GIN_MODE", "ROOT_MODE", "DATABASE_URL",
	"K8S_PROBE", "K8S_PROXY_URL", "CHECK_TIMEOUT", "SHUTDOWN_TIMEOUT",
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, configKeys...)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, RootModeDashboard, cfg.RootMode)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.K8sProbe)
	assert.Equal(t, DefaultK8sProxy, cfg.K8sProxyURL)
	assert.Equal(t, 2*time.Second, cfg.CheckTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("PORT", "9000")
	t.Setenv("ROOT_MODE", "json")
	t.Setenv("DATABASE_URL", "postgres://lab:lab@db:5432/lab")
	t.Setenv("K8S_PROBE", "true")
	t.Setenv("CHECK_TIMEOUT", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, RootModeJSON, cfg.RootMode)
	assert.Equal(t, "postgres://lab:lab@db:5432/lab", cfg.DatabaseURL)
	assert.True(t, cfg.K8sProbe)
	assert.Equal(t, 500*time.Millisecond, cfg.CheckTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"PORT":          "http",
		"K8S_PROBE":     "maybe",
		"CHECK_TIMEOUT": "soon",
		"ROOT_MODE":     "spa",
		"GIN_MODE":      "prod",
		"K8S_PROXY_URL": "not a url",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t, configKeys...)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_PortOutOfRange(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestGetEnv(t *testing.T) {
	clearEnv(t, "LAB_TEST_VAR")
	assert.Equal(t, "fallback", GetEnv("LAB_TEST_VAR", "fallback"))

	t.Setenv("LAB_TEST_VAR", "")
	assert.Equal(t, "", GetEnv("LAB_TEST_VAR", "fallback"))
}

func TestLookupEnv(t *testing.T) {
	clearEnv(t, "LAB_TEST_VAR")
	assert.Nil(t, LookupEnv("LAB_TEST_VAR"))

	t.Setenv("LAB_TEST_VAR", "")
	value := LookupEnv("LAB_TEST_VAR")
	require.NotNil(t, value)
	assert.Equal(t, "", *value)
}
