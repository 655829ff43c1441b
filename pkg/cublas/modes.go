package cublas

import (
	"fmt"

	"github.com/gpukit/cublas-go/internal/bindings"
)

// PointerMode says where scalar arguments for subsequent operations live:
// host memory or device memory. The mode is session-scoped state held inside
// the native library; it is never mirrored locally, so every read crosses
// the boundary.
type PointerMode int

const (
	// PointerModeHost expects scalar arguments in host memory. This is the
	// native default for a fresh context.
	PointerModeHost PointerMode = iota

	// PointerModeDevice expects scalar arguments in device memory.
	PointerModeDevice
)

func (m PointerMode) String() string {
	switch m {
	case PointerModeHost:
		return "host"
	case PointerModeDevice:
		return "device"
	default:
		return fmt.Sprintf("pointer-mode(%d)", int(m))
	}
}

func (m PointerMode) native() (int32, error) {
	switch m {
	case PointerModeHost:
		return bindings.NativePointerModeHost, nil
	case PointerModeDevice:
		return bindings.NativePointerModeDevice, nil
	default:
		return 0, fmt.Errorf("cublas: invalid pointer mode %d", int(m))
	}
}

func pointerModeFromNative(v int32) (PointerMode, error) {
	switch v {
	case bindings.NativePointerModeHost:
		return PointerModeHost, nil
	case bindings.NativePointerModeDevice:
		return PointerModeDevice, nil
	default:
		return 0, fmt.Errorf("cublas: native library reported unknown pointer mode %d", v)
	}
}

// AtomicsMode controls whether the native library may use atomic device
// operations that trade bit-exact reproducibility for speed.
type AtomicsMode int

const (
	// AtomicsNotAllowed forbids atomics. This is the native default.
	AtomicsNotAllowed AtomicsMode = iota

	// AtomicsAllowed permits atomics.
	AtomicsAllowed
)

func (m AtomicsMode) String() string {
	switch m {
	case AtomicsNotAllowed:
		return "not-allowed"
	case AtomicsAllowed:
		return "allowed"
	default:
		return fmt.Sprintf("atomics-mode(%d)", int(m))
	}
}

func (m AtomicsMode) native() (int32, error) {
	switch m {
	case AtomicsNotAllowed:
		return bindings.NativeAtomicsNotAllowed, nil
	case AtomicsAllowed:
		return bindings.NativeAtomicsAllowed, nil
	default:
		return 0, fmt.Errorf("cublas: invalid atomics mode %d", int(m))
	}
}

func atomicsModeFromNative(v int32) (AtomicsMode, error) {
	switch v {
	case bindings.NativeAtomicsNotAllowed:
		return AtomicsNotAllowed, nil
	case bindings.NativeAtomicsAllowed:
		return AtomicsAllowed, nil
	default:
		return 0, fmt.Errorf("cublas: native library reported unknown atomics mode %d", v)
	}
}
