package config_test

import (
	"testing"
	"time"

	"github.com/nyayasetu/go-legalaid/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	require.Equal(t, "Legal Aid", cfg.GetAppName())
	require.Equal(t, "http://localhost:8000/api", cfg.GetAPIAddress())
	require.Equal(t, "DEV", cfg.GetEnv())
	require.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
	require.False(t, cfg.GetAllowInsecure())
	require.NotEmpty(t, cfg.GetDataFolder())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("LEGALAID_API_ADDRESS", "https://portal.example.com/api")
	t.Setenv("LEGALAID_DATA_FOLDER", t.TempDir())
	t.Setenv("LEGALAID_REQUEST_TIMEOUT", "5s")
	t.Setenv("LEGALAID_ALLOW_INSECURE", "true")

	cfg, err := config.New()
	require.NoError(t, err)

	require.Equal(t, "https://portal.example.com/api", cfg.GetAPIAddress())
	require.Equal(t, 5*time.Second, cfg.GetRequestTimeout())
	require.True(t, cfg.GetAllowInsecure())
}
