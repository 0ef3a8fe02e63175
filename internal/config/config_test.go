package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000/api", cfg.Backend.URL)
	assert.Equal(t, 60*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Poll.Interval)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Kubernetes.Enabled)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"BACKEND_TIMEOUT": "soon",
		"POLL_INTERVAL":   "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Poll.Interval)
}

func TestFromViper_RejectsNonPositiveInterval(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"POLL_INTERVAL": "0s"}))
	assert.Error(t, err)
}

func TestFromViper_RejectsBadPort(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"SERVER_PORT": 0}))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "rms", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5433/rms?sslmode=disable", d.DSN())
}
