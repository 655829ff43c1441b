package cublas

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the version of this wrapper module. The native
// library version is per-context; see Context.Version.
func WrapperVersion() string { return Version }
