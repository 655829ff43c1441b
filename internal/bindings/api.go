package bindings

import (
	"fmt"

	"github.com/gpukit/cublas-go/internal/registry"
)

// contexts is the process-wide live set for cuBLAS context handles. The
// registry is updated in exactly two places, Create and Destroy, so the
// handle-validity invariant stays auditable.
var contexts = registry.New[Handle]("cublas context")

// LiveContexts returns the number of currently live context handles.
func LiveContexts() int { return contexts.Len() }

// ContextLive reports whether a handle is currently registered as live.
func ContextLive(h Handle) bool { return contexts.Exists(h) }

// Create invokes the native create primitive. On success the returned handle
// is registered as live. Creating contexts is expensive; callers should reuse
// one context per device and configuration rather than creating them in a
// loop.
func Create() (Handle, error) {
	if calls.Create == nil {
		return 0, ErrNotLoaded
	}
	var h Handle
	st := Status(calls.Create(&h))
	switch st {
	case StatusSuccess:
		contexts.Track(h)
		return h, nil
	case StatusNotInitialized:
		return 0, ErrNotInitialized
	case StatusArchMismatch:
		return 0, ErrArchMismatch
	case StatusAllocFailed:
		return 0, ErrAllocFailed
	default:
		return 0, &StatusError{Reason: "unable to create the cuBLAS context", Status: st}
	}
}

// Destroy unregisters the handle and then invokes the native destroy
// primitive. The handle leaves the live set before the native call: a failed
// destroy must leave the handle unusable, never retryable, since retrying
// against a half-torn-down context risks undefined behavior. A handle that is
// already gone is rejected with ErrStaleHandle.
func Destroy(h Handle) error {
	if calls.Destroy == nil {
		return ErrNotLoaded
	}
	if !contexts.Untrack(h) {
		return fmt.Errorf("%w: %#x", ErrStaleHandle, uintptr(h))
	}
	switch st := Status(calls.Destroy(h)); st {
	case StatusSuccess:
		return nil
	case StatusNotInitialized:
		return ErrNotInitialized
	default:
		return &StatusError{Reason: "unable to destroy the cuBLAS context", Status: st}
	}
}

// GetPointerMode returns the native pointer mode value for a live handle.
func GetPointerMode(h Handle) (int32, error) {
	if calls.GetPointerMode == nil {
		return 0, ErrNotLoaded
	}
	contexts.Assert(h)
	mode := NativePointerModeHost
	switch st := Status(calls.GetPointerMode(h, &mode)); st {
	case StatusSuccess:
		return mode, nil
	case StatusNotInitialized:
		return 0, ErrNotInitialized
	default:
		return 0, &StatusError{Reason: "unable to get the pointer mode", Status: st}
	}
}

// SetPointerMode sets the native pointer mode value for a live handle.
func SetPointerMode(h Handle, mode int32) error {
	if calls.SetPointerMode == nil {
		return ErrNotLoaded
	}
	contexts.Assert(h)
	switch st := Status(calls.SetPointerMode(h, mode)); st {
	case StatusSuccess:
		return nil
	case StatusNotInitialized:
		return ErrNotInitialized
	default:
		return &StatusError{Reason: "unable to set the pointer mode", Status: st}
	}
}

// GetVersion returns the native library version associated with a live
// handle, e.g. 120103 for 12.1.3.
func GetVersion(h Handle) (int32, error) {
	if calls.GetVersion == nil {
		return 0, ErrNotLoaded
	}
	contexts.Assert(h)
	var version int32
	switch st := Status(calls.GetVersion(h, &version)); st {
	case StatusSuccess:
		return version, nil
	case StatusNotInitialized:
		return 0, ErrNotInitialized
	default:
		return 0, &StatusError{Reason: "unable to get the library version", Status: st}
	}
}

// GetAtomicsMode returns the native atomics mode value for a live handle.
func GetAtomicsMode(h Handle) (int32, error) {
	if calls.GetAtomicsMode == nil {
		return 0, ErrNotLoaded
	}
	contexts.Assert(h)
	mode := NativeAtomicsNotAllowed
	switch st := Status(calls.GetAtomicsMode(h, &mode)); st {
	case StatusSuccess:
		return mode, nil
	case StatusNotInitialized:
		return 0, ErrNotInitialized
	default:
		return 0, &StatusError{Reason: "unable to get the atomics mode", Status: st}
	}
}

// SetAtomicsMode sets the native atomics mode value for a live handle.
func SetAtomicsMode(h Handle, mode int32) error {
	if calls.SetAtomicsMode == nil {
		return ErrNotLoaded
	}
	contexts.Assert(h)
	switch st := Status(calls.SetAtomicsMode(h, mode)); st {
	case StatusSuccess:
		return nil
	case StatusNotInitialized:
		return ErrNotInitialized
	default:
		return &StatusError{Reason: "unable to set the atomics mode", Status: st}
	}
}
