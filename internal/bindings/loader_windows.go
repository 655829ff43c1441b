//go:build windows

package bindings

// LoadOptions configures where the native shared library is looked for.
type LoadOptions struct {
	LibraryPath string
	SearchPaths []string
}

// Load reports that dynamic loading is unavailable on Windows. The call table
// can still be populated through Install, so emulated runs keep working.
func Load(LoadOptions) error { return ErrUnsupportedPlatform }

// IsLoaded reports whether the native library has been loaded.
func IsLoaded() bool { return false }

// LoadedPath returns the path of the opened shared object.
func LoadedPath() string { return "" }
