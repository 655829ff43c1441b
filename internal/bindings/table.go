package bindings

// CallTable dispatches the native session entry points used by this module.
// Load fills it from the real shared library; Install swaps in a substitute
// implementation such as the in-memory emulation used by tests.
type CallTable struct {
	// cublasCreate_v2
	Create func(handle *Handle) uint32
	// cublasDestroy_v2
	Destroy func(handle Handle) uint32
	// cublasGetPointerMode_v2
	GetPointerMode func(handle Handle, mode *int32) uint32
	// cublasSetPointerMode_v2
	SetPointerMode func(handle Handle, mode int32) uint32
	// cublasGetVersion_v2
	GetVersion func(handle Handle, version *int32) uint32
	// cublasGetAtomicsMode
	GetAtomicsMode func(handle Handle, mode *int32) uint32
	// cublasSetAtomicsMode
	SetAtomicsMode func(handle Handle, mode int32) uint32
}

var calls CallTable

// Install replaces the call table and returns a func restoring the previous
// one. It must not race with in-flight native calls; it exists for tests,
// examples, and emulated runs, not for production reconfiguration.
func Install(t CallTable) (restore func()) {
	prev := calls
	calls = t
	return func() { calls = prev }
}
