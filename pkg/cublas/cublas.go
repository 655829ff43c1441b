package cublas

import (
	"github.com/gpukit/cublas-go/internal/bindings"
	"github.com/gpukit/cublas-go/pkg/cublas/logging"
)

var logger = logging.New(nil)

// SetLogger replaces the package logger. Passing nil restores the default
// slog-backed logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	logger = l
}

// Init loads the native cuBLAS shared library and binds the session entry
// points. It is safe to call multiple times; only the first call does work.
// Contexts cannot be created before Init succeeds.
func Init(cfg Config) error {
	if err := bindings.Load(cfg.toBindings()); err != nil {
		return err
	}
	logger.Info("cublas library loaded", "path", bindings.LoadedPath())
	return nil
}

// Initialized reports whether the native library has been loaded.
func Initialized() bool { return bindings.IsLoaded() }

// LibraryPath returns the path of the shared object Init opened, when known.
func LibraryPath() string { return bindings.LoadedPath() }

// LiveContexts returns the number of context handles currently registered as
// live. Useful for leak detection in tests and long-running services.
func LiveContexts() int { return bindings.LiveContexts() }
