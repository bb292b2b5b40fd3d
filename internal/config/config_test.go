package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.TxRetries)
	assert.True(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestDecodeOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("JWT_TTL", "30m")
	v.Set("TX_RETRIES", 0)
	v.Set("AUTO_MIGRATE", "false")

	cfg, err := decode(v)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 1, cfg.TxRetries)
	assert.False(t, cfg.AutoMigrate)
}
