package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config file exists in the test working directory; the storefront
	// must come up on defaults alone.
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, "simulated", cfg.Auth.Provider)
	assert.Equal(t, 1500*time.Millisecond, cfg.Auth.SimulatedDelay)
	assert.Equal(t, 10*time.Minute, cfg.Auth.ChallengeTTL)
	assert.Empty(t, cfg.Analytics.WebhookURL)
	assert.Equal(t, 5*time.Second, cfg.Analytics.Timeout)
	assert.True(t, cfg.Features.Auth)
	assert.True(t, cfg.Features.Search)
}
