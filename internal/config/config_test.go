package config_test

import (
	"debroglie/internal/config"
	"debroglie/pkg/physics"
	"debroglie/pkg/serrors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, physics.Default, cfg.PhysicsConstants())
	require.Empty(t, cfg.Spectrum.TablePath)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: warn
constants:
  planckConstant: 1.0
spectrum:
  tablePath: /etc/bands.toml
http:
  addr: ":9090"
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 1.0, cfg.Constants.PlanckConstant)
	require.Equal(t, physics.SpeedOfLight, cfg.Constants.SpeedOfLight)
	require.Equal(t, "/etc/bands.toml", cfg.Spectrum.TablePath)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AVOGADRO_NUMBER", "6e23")
	t.Setenv("SPECTRUM_TABLE_PATH", "bands.yaml")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, 6e23, cfg.Constants.AvogadroNumber)
	require.Equal(t, "bands.yaml", cfg.Spectrum.TablePath)
}

func TestLoad_InvalidConstants(t *testing.T) {
	t.Setenv("SPEED_OF_LIGHT", "0")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.ErrorIs(t, err, serrors.ErrDomain)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("constants: ["), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
