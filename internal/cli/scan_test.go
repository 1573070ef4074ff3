package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarn-dev/sqlsweep/internal/config"
	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

func resetScanFlags(t *testing.T) {
	t.Helper()
	old := scanFlags
	scanFlags = scanFlagValues{}
	t.Cleanup(func() { scanFlags = old })
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))
}

func TestBuildScanConfig_Defaults(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("SQLSWEEP_BINARY", "")

	cfg, err := buildScanConfig(t.TempDir(), "http://example.com/?id=1", false)
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/?id=1", cfg.Target)
	assert.Equal(t, sqlsweep.DefaultScannerBinary, cfg.Binary)
	assert.Equal(t, sqlsweep.DefaultMarker, cfg.Marker)
	assert.Empty(t, cfg.ExtraArgs)
	assert.False(t, cfg.Verbose)
}

func TestBuildScanConfig_ConfigFile(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("SQLSWEEP_BINARY", "")

	dir := t.TempDir()
	writeProjectConfig(t, dir, `scanner:
  binary: /opt/sqlmap/sqlmap.py
  marker: "[+] "
  extra_args: ["--level", "2"]
`)

	cfg, err := buildScanConfig(dir, "http://example.com/?id=1", true)
	require.NoError(t, err)

	assert.Equal(t, "/opt/sqlmap/sqlmap.py", cfg.Binary)
	assert.Equal(t, "[+] ", cfg.Marker)
	assert.Equal(t, []string{"--level", "2"}, cfg.ExtraArgs)
	assert.True(t, cfg.Verbose)
}

func TestBuildScanConfig_EnvBeatsConfigFile(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("SQLSWEEP_BINARY", "/usr/local/bin/sqlmap")

	dir := t.TempDir()
	writeProjectConfig(t, dir, "scanner:\n  binary: from-yaml\n")

	cfg, err := buildScanConfig(dir, "http://example.com/?id=1", false)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/sqlmap", cfg.Binary)
}

func TestBuildScanConfig_FlagBeatsEverything(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("SQLSWEEP_BINARY", "from-env")
	scanFlags.binary = "from-flag"

	dir := t.TempDir()
	writeProjectConfig(t, dir, "scanner:\n  binary: from-yaml\n")

	cfg, err := buildScanConfig(dir, "http://example.com/?id=1", false)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Binary)
}

func TestBuildScanConfig_ExtraArgsMergeOrder(t *testing.T) {
	resetScanFlags(t)
	t.Setenv("SQLSWEEP_BINARY", "")
	scanFlags.extra = []string{"--random-agent"}

	dir := t.TempDir()
	writeProjectConfig(t, dir, `scanner:
  extra_args: ["--level", "2"]
`)

	cfg, err := buildScanConfig(dir, "http://example.com/?id=1", false)
	require.NoError(t, err)
	// config-file args first, CLI flags after
	assert.Equal(t, []string{"--level", "2", "--random-agent"}, cfg.ExtraArgs)
}

func TestBuildScanConfig_InvalidConfigFile(t *testing.T) {
	resetScanFlags(t)

	dir := t.TempDir()
	writeProjectConfig(t, dir, "scanner: [unclosed")

	_, err := buildScanConfig(dir, "http://example.com/?id=1", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ConfigFileName)
}

func TestResolveTarget_FromArgs(t *testing.T) {
	got, err := resolveTarget([]string{"http://example.com/?id=1"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/?id=1", got)
}
