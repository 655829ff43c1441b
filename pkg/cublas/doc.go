// Package cublas provides a safe Go wrapper around the cuBLAS handle-based
// session API.
//
// The native library hands out opaque context handles and exhibits undefined
// behavior when a destroyed handle is reused. This package wraps each handle
// in a Context with single-owner semantics, tracks which handles are live in
// a process-wide registry, validates liveness before every native call, and
// translates native status codes into a structured error taxonomy.
//
// Usage:
//
//	if err := cublas.Init(cublas.Config{}); err != nil {
//		log.Fatal(err)
//	}
//	ctx, err := cublas.NewContext()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	if err := ctx.SetPointerMode(cublas.PointerModeDevice); err != nil {
//		log.Fatal(err)
//	}
//
// A Context must not be copied. It may be handed to another owner, after
// which only that owner closes it. Close is safe to call more than once on
// the same Context; the underlying handle is destroyed exactly once.
//
// Creating contexts is expensive. One Context per device and configuration,
// reused across calls, is the recommended shape.
package cublas
