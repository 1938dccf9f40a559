package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5, cfg.Ledger.PageSize)
	assert.Equal(t, 10, cfg.Ledger.MonitorPageSize)
	assert.Equal(t, 10, cfg.Ledger.LowStockThreshold)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "2s")
	t.Setenv("LEDGER_PAGE_SIZE", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 8, cfg.Ledger.PageSize)
}

func TestLoad_BadDurationFails(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
