package cublas

import (
	"errors"

	"github.com/gpukit/cublas-go/internal/bindings"
)

// The bindings layer owns the status-code translation; the sentinels are
// re-exported here so callers never import internal packages.
var (
	// ErrNotInitialized indicates the native library or context was not
	// properly initialized before use.
	ErrNotInitialized = bindings.ErrNotInitialized

	// ErrArchMismatch indicates the device architecture cannot satisfy the
	// requested operation. Not retryable.
	ErrArchMismatch = bindings.ErrArchMismatch

	// ErrAllocFailed indicates resource allocation failed while creating a
	// context. Possibly transient; callers may retry after freeing device
	// memory.
	ErrAllocFailed = bindings.ErrAllocFailed

	// ErrNotLoaded indicates Init has not been called (or failed).
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates no libcublas shared object was found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrStaleHandle indicates a destroy attempt on a handle that is no
	// longer live.
	ErrStaleHandle = bindings.ErrStaleHandle

	// ErrContextClosed indicates an operation on a Context after Close.
	ErrContextClosed = errors.New("cublas: context has been closed")
)

// Status mirrors the native cublasStatus_t codes.
type Status = bindings.Status

// Native status codes, re-exported for callers that inspect a StatusError.
const (
	StatusSuccess         = bindings.StatusSuccess
	StatusNotInitialized  = bindings.StatusNotInitialized
	StatusAllocFailed     = bindings.StatusAllocFailed
	StatusInvalidValue    = bindings.StatusInvalidValue
	StatusArchMismatch    = bindings.StatusArchMismatch
	StatusMappingError    = bindings.StatusMappingError
	StatusExecutionFailed = bindings.StatusExecutionFailed
	StatusInternalError   = bindings.StatusInternalError
	StatusNotSupported    = bindings.StatusNotSupported
	StatusLicenseError    = bindings.StatusLicenseError
)

// StatusError reports a native status code with no dedicated sentinel.
// Callers can inspect the raw Status to decide whether a condition is
// retryable.
type StatusError = bindings.StatusError
