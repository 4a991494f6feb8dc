package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Timeout int    `json:"timeout_seconds"`
	Format  string `json:"output_format"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "config.json5")

	err := os.WriteFile(base, []byte(`{timeout_seconds: 30, output_format: "csv"}`), 0o644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{output_format: "both"}`), 0o644)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.Timeout)
	require.Equal(t, "both", cfg.Format)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("GSTSCAN_TEST_FLAG", "true")
	require.True(t, EnvBool("GSTSCAN_TEST_FLAG", false))

	t.Setenv("GSTSCAN_TEST_FLAG", "0")
	require.False(t, EnvBool("GSTSCAN_TEST_FLAG", true))

	require.True(t, EnvBool("GSTSCAN_TEST_FLAG_UNSET", true))
}
