//go:build !windows

package bindings

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// LoadOptions configures where the native shared library is looked for.
type LoadOptions struct {
	// LibraryPath, when set, names the exact shared object to open. No
	// search is performed.
	LibraryPath string

	// SearchPaths are extra directories tried before the defaults.
	SearchPaths []string
}

// cuBLAS major versions to probe, newest first.
var soVersions = []int{13, 12, 11, 10}

var (
	loadOnce   sync.Once
	loadErr    error
	loaded     bool
	loadedPath string
)

// IsLoaded reports whether the native library has been loaded.
func IsLoaded() bool { return loaded }

// LoadedPath returns the path of the shared object that was opened, for
// diagnostics. Empty until Load succeeds or when the system loader resolved
// the name itself.
func LoadedPath() string { return loadedPath }

// Load opens libcublas and registers the native entry points into the call
// table. Safe to call multiple times; only the first call does work.
func Load(opts LoadOptions) error {
	loadOnce.Do(func() {
		loadErr = doLoad(opts)
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad(opts LoadOptions) error {
	lib, path, err := openLibrary(opts)
	if err != nil {
		return err
	}
	loadedPath = path

	var t CallTable
	purego.RegisterLibFunc(&t.Create, lib, "cublasCreate_v2")
	purego.RegisterLibFunc(&t.Destroy, lib, "cublasDestroy_v2")
	purego.RegisterLibFunc(&t.GetPointerMode, lib, "cublasGetPointerMode_v2")
	purego.RegisterLibFunc(&t.SetPointerMode, lib, "cublasSetPointerMode_v2")
	purego.RegisterLibFunc(&t.GetVersion, lib, "cublasGetVersion_v2")
	purego.RegisterLibFunc(&t.GetAtomicsMode, lib, "cublasGetAtomicsMode")
	purego.RegisterLibFunc(&t.SetAtomicsMode, lib, "cublasSetAtomicsMode")
	calls = t
	return nil
}

func openLibrary(opts LoadOptions) (uintptr, string, error) {
	if opts.LibraryPath != "" {
		lib, err := tryOpen(opts.LibraryPath)
		if err != nil {
			return 0, "", fmt.Errorf("cublas: open %s: %w", opts.LibraryPath, err)
		}
		return lib, opts.LibraryPath, nil
	}

	paths := append(append([]string{}, opts.SearchPaths...), librarySearchPaths()...)
	for _, dir := range paths {
		for _, ver := range soVersions {
			full := filepath.Join(dir, formatLibraryName(ver))
			if lib, err := tryOpen(full); err == nil {
				return lib, full, nil
			}
		}
		full := filepath.Join(dir, formatLibraryName(0))
		if lib, err := tryOpen(full); err == nil {
			return lib, full, nil
		}
	}

	// Fall back to bare names so the system loader can resolve them.
	for _, ver := range soVersions {
		if lib, err := tryOpen(formatLibraryName(ver)); err == nil {
			return lib, "", nil
		}
	}
	if lib, err := tryOpen(formatLibraryName(0)); err == nil {
		return lib, "", nil
	}

	return 0, "", ErrLibraryNotFound
}

// tryOpen binds eagerly so missing symbols surface at load time rather than
// at the first call.
func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// formatLibraryName returns the platform-specific shared object name for a
// cuBLAS major version. Version 0 means the unversioned name.
//
//	linux:  libcublas.so.12
//	darwin: libcublas.12.dylib
func formatLibraryName(version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version > 0 {
			return fmt.Sprintf("libcublas.%d.dylib", version)
		}
		return "libcublas.dylib"
	default:
		if version > 0 {
			return fmt.Sprintf("libcublas.so.%d", version)
		}
		return "libcublas.so"
	}
}

// librarySearchPaths returns the default directories probed for libcublas,
// environment overrides first.
func librarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv("CUBLAS_LIBRARY_PATH"); dir != "" {
		paths = append(paths, filepath.SplitList(dir)...)
	}
	if ld := os.Getenv("LD_LIBRARY_PATH"); ld != "" {
		paths = append(paths, filepath.SplitList(ld)...)
	}
	if cuda := os.Getenv("CUDA_PATH"); cuda != "" {
		paths = append(paths, filepath.Join(cuda, "lib64"), filepath.Join(cuda, "lib"))
	}

	paths = append(paths,
		"/usr/local/cuda/lib64",
		"/usr/local/cuda/targets/x86_64-linux/lib",
		"/usr/local/cuda/targets/sbsa-linux/lib",
		"/opt/cuda/lib64",
		"/usr/lib/x86_64-linux-gnu",
		"/usr/lib/aarch64-linux-gnu",
		"/usr/lib64",
		"/usr/local/lib",
		"/usr/lib",
	)
	return paths
}
