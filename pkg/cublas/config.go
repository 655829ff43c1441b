package cublas

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gpukit/cublas-go/internal/bindings"
)

// Config expresses the knobs for locating and loading the native library.
// The zero value is valid: the loader probes the usual CUDA install
// directories and the CUBLAS_LIBRARY_PATH / LD_LIBRARY_PATH environment
// variables.
type Config struct {
	// LibraryPath names the exact shared object to open, skipping the
	// search entirely.
	LibraryPath string `toml:"library_path"`

	// SearchPaths are extra directories probed before the defaults.
	SearchPaths []string `toml:"search_paths"`

	// LogLevel sets the verbosity for the default logger: "debug", "info",
	// "warn", or "error". Empty means "info".
	LogLevel string `toml:"log_level"`
}

// LoadConfigFile reads a Config from a TOML file.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cublas: load config %s: %w", path, err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel translates the configured log level string.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("cublas: unknown log level %q", c.LogLevel)
	}
}

func (c Config) toBindings() bindings.LoadOptions {
	return bindings.LoadOptions{
		LibraryPath: c.LibraryPath,
		SearchPaths: c.SearchPaths,
	}
}
