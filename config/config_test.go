package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "cookbook_session", cfg.Session.CookieName)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Migration.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.ErrorContains(t, err, "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Session: &SessionConfig{Secret: "s3cret"}}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.NotNil(t, cfg.Migration)
	assert.False(t, cfg.Migration.Enabled)
}

func TestApplyDefaults_RequiresSessionSecret(t *testing.T) {
	for _, cfg := range []*Config{
		{},
		{Session: &SessionConfig{Secret: "   "}},
	} {
		assert.EqualError(t, cfg.applyDefaults(), "session.secret must be set")
	}
}
