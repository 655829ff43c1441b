package bindings

import (
	"errors"
	"fmt"
)

// Handle is an opaque cuBLAS context handle (cublasHandle_t). Its bit pattern
// carries no meaning to this layer; the only property that matters is whether
// it is currently registered as live.
type Handle uintptr

// Status mirrors cublasStatus_t.
type Status uint32

// Status values from the cuBLAS v2 API.
const (
	StatusSuccess         Status = 0
	StatusNotInitialized  Status = 1
	StatusAllocFailed     Status = 3
	StatusInvalidValue    Status = 7
	StatusArchMismatch    Status = 8
	StatusMappingError    Status = 11
	StatusExecutionFailed Status = 13
	StatusInternalError   Status = 14
	StatusNotSupported    Status = 15
	StatusLicenseError    Status = 16
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "CUBLAS_STATUS_SUCCESS"
	case StatusNotInitialized:
		return "CUBLAS_STATUS_NOT_INITIALIZED"
	case StatusAllocFailed:
		return "CUBLAS_STATUS_ALLOC_FAILED"
	case StatusInvalidValue:
		return "CUBLAS_STATUS_INVALID_VALUE"
	case StatusArchMismatch:
		return "CUBLAS_STATUS_ARCH_MISMATCH"
	case StatusMappingError:
		return "CUBLAS_STATUS_MAPPING_ERROR"
	case StatusExecutionFailed:
		return "CUBLAS_STATUS_EXECUTION_FAILED"
	case StatusInternalError:
		return "CUBLAS_STATUS_INTERNAL_ERROR"
	case StatusNotSupported:
		return "CUBLAS_STATUS_NOT_SUPPORTED"
	case StatusLicenseError:
		return "CUBLAS_STATUS_LICENSE_ERROR"
	default:
		return fmt.Sprintf("CUBLAS_STATUS(%d)", uint32(s))
	}
}

// Native pointer mode values (cublasPointerMode_t).
const (
	NativePointerModeHost   int32 = 0
	NativePointerModeDevice int32 = 1
)

// Native atomics mode values (cublasAtomicsMode_t).
const (
	NativeAtomicsNotAllowed int32 = 0
	NativeAtomicsAllowed    int32 = 1
)

var (
	// ErrNotLoaded reports that the native library has not been loaded; call
	// cublas.Init (or install an emulation) first.
	ErrNotLoaded = errors.New("cublas: native library not loaded")

	// ErrLibraryNotFound reports that no usable libcublas shared object could
	// be located on this system.
	ErrLibraryNotFound = errors.New("cublas: libcublas not found")

	// ErrUnsupportedPlatform reports that dynamic loading of the native
	// library is not available on this platform.
	ErrUnsupportedPlatform = errors.New("cublas: platform does not support dynamic loading")

	// ErrNotInitialized maps CUBLAS_STATUS_NOT_INITIALIZED: the library or
	// context was not properly initialized before use.
	ErrNotInitialized = errors.New("cublas: library not initialized")

	// ErrArchMismatch maps CUBLAS_STATUS_ARCH_MISMATCH: the device
	// architecture cannot satisfy the requested operation.
	ErrArchMismatch = errors.New("cublas: device architecture mismatch")

	// ErrAllocFailed maps CUBLAS_STATUS_ALLOC_FAILED: resource allocation
	// failed while creating the context.
	ErrAllocFailed = errors.New("cublas: resource allocation failed")

	// ErrStaleHandle reports a destroy attempt on a handle that is no longer
	// registered as live. The first destroy wins; every later attempt on the
	// same handle value is rejected without touching the native library.
	ErrStaleHandle = errors.New("cublas: handle is no longer live")
)

// StatusError carries a native status code that has no dedicated sentinel.
// Reason is a short fixed description per call site.
type StatusError struct {
	Reason string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cublas: %s (%s)", e.Reason, e.Status)
}
