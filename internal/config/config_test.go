package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "memory", cfg.Store.Driver)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MERGINGTON_SERVER_PORT", "9090")
	t.Setenv("MERGINGTON_STORE_DRIVER", "sqlite")
	t.Setenv("MERGINGTON_STORE_PATH", "/tmp/rosters.db")
	t.Setenv("MERGINGTON_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "/tmp/rosters.db", cfg.Store.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  host: 127.0.0.1
  port: 3000
store:
  driver: sqlite
  path: rosters.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("MERGINGTON_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 3000, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "rosters.db", cfg.Store.Path)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("MERGINGTON_SERVER_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsBadDriver(t *testing.T) {
	t.Setenv("MERGINGTON_STORE_DRIVER", "postgres")

	_, err := config.Load()
	require.ErrorContains(t, err, "invalid store driver")
}

func TestLoadRejectsBadTransportMode(t *testing.T) {
	t.Setenv("MERGINGTON_TRANSPORT_MODE", "grpc")

	_, err := config.Load()
	require.ErrorContains(t, err, "invalid transport mode")
}
