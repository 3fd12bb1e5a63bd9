package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	// Check defaults are applied (from defaults() function)
	assert.Equal(t, "agency-api", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.Equal(t, DefaultClientCircuitMaxFailures, cfg.Client.CircuitBreaker.MaxFailures)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
// Double underscore separates key segments (APP_SERVER__PORT -> server.port).
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER__PORT", "9090")
	t.Setenv("APP_LOG__LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_EnvVarMultiWordKeys tests that multi-word keys map cleanly
// through the double-underscore separator. These are the variables the
// deployment actually sets, so the mapping is load-bearing.
func TestLoad_EnvVarMultiWordKeys(t *testing.T) {
	t.Setenv("APP_CONTENT__SPACE_ID", "space-from-env")
	t.Setenv("APP_CONTENT__ACCESS_TOKEN", "token-from-env")
	t.Setenv("APP_EMAIL__ACCESS_KEY_ID", "AKIA-test")
	t.Setenv("APP_EMAIL__SECRET_ACCESS_KEY", "secret-test")
	t.Setenv("APP_EMAIL__FROM_ADDRESS", "noreply@example.com")
	t.Setenv("APP_EMAIL__TO_ADDRESS", "inbox@example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "space-from-env", cfg.Content.SpaceID)
	assert.Equal(t, "token-from-env", cfg.Content.AccessToken)
	assert.Equal(t, "AKIA-test", cfg.Email.AccessKeyID)
	assert.Equal(t, "secret-test", cfg.Email.SecretAccessKey)
	assert.Equal(t, "noreply@example.com", cfg.Email.FromAddress)
	assert.Equal(t, "inbox@example.com", cfg.Email.ToAddress)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 5*time.Second, cfg.Client.Retry.MaxInterval)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	// Should not error - missing profile file is silently ignored
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	// Should fall back to defaults
	assert.Equal(t, "agency-api", cfg.App.Name)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY__ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_ContentDefaults tests the CMS connection and probing defaults.
func TestLoad_ContentDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.contentful.com", cfg.Content.BaseURL)
	assert.Equal(t, "master", cfg.Content.Environment)
	assert.Equal(t, []string{"blog", "blogPost", "article"}, cfg.Content.ArticleTypes)
	assert.Equal(t, []string{"portfolios", "portfolio", "portfolioItem"}, cfg.Content.PortfolioTypes)
	assert.Equal(t, []string{"testimonial", "testimonials"}, cfg.Content.TestimonialTypes)
}

// TestLoad_EmailDefaults tests the mail provider defaults. Credentials and
// addresses have no defaults - they arrive via environment only.
func TestLoad_EmailDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Email.Region)
	assert.Empty(t, cfg.Email.AccessKeyID)
	assert.Empty(t, cfg.Email.SecretAccessKey)
	assert.Empty(t, cfg.Email.FromAddress)
	assert.Empty(t, cfg.Email.ToAddress)
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "agency-api", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)
}

// TestLoad_SiteDefaults tests the presentation defaults.
func TestLoad_SiteDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "system", cfg.Site.Theme)
}

// TestDefaults tests the defaults map is internally consistent.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "agency-api", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultClientRetryMaxAttempts, d["client.retry.max_attempts"])
	assert.NotContains(t, d, "content.space_id", "secrets must not have defaults")
	assert.NotContains(t, d, "content.access_token", "secrets must not have defaults")
	assert.NotContains(t, d, "email.access_key_id", "secrets must not have defaults")
	assert.NotContains(t, d, "email.secret_access_key", "secrets must not have defaults")
}
