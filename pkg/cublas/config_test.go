package cublas

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cublas.toml")
	data := `
library_path = "/opt/cuda/lib64/libcublas.so.12"
search_paths = ["/opt/cuda/lib64", "/usr/local/cuda/lib64"]
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/cuda/lib64/libcublas.so.12", cfg.LibraryPath)
	assert.Equal(t, []string{"/opt/cuda/lib64", "/usr/local/cuda/lib64"}, cfg.SearchPaths)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFileRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cublas.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "loud"`), 0o644))

	_, err := LoadConfigFile(path)
	require.Error(t, err)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestSlogLevelDefaults(t *testing.T) {
	level, err := Config{}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = Config{LogLevel: "warning"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestToBindingsCarriesPaths(t *testing.T) {
	cfg := Config{
		LibraryPath: "/x/libcublas.so",
		SearchPaths: []string{"/a", "/b"},
	}
	opts := cfg.toBindings()
	assert.Equal(t, cfg.LibraryPath, opts.LibraryPath)
	assert.Equal(t, cfg.SearchPaths, opts.SearchPaths)
}
