// Package bindings is the sole boundary between this module and the native
// cuBLAS library.
//
// # Design Principles
//
//  1. Isolation: all purego and unsafe code lives in this package. No other
//     package touches the native library directly, which keeps the unsafe
//     surface small and auditable.
//
//  2. Minimal surface: only the session primitives the wrapper needs are
//     bound. Compute kernels, memory transfer helpers, and stream management
//     are deliberately not wrapped here.
//
//  3. Error handling: every native status code is translated to a Go error
//     immediately, at the call site, exhaustively. Unrecognized codes become
//     a StatusError rather than being ignored.
//
//  4. Lifecycle safety: the live-handle registry is consulted before every
//     operation and updated at exactly two points, Create and Destroy. A
//     handle that was destroyed is never passed to the native library again.
//
// The native entry points are dispatched through a call table filled in by
// Load. Tests substitute the table via Install, so the package above this one
// can be exercised without a GPU or the real shared library.
package bindings
