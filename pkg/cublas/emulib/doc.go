// Package emulib provides an in-memory emulation of the cuBLAS session API
// for testing and examples.
//
// The emulation implements the same contract the real library does: create
// hands out fresh opaque handle values, each session carries its own pointer
// mode (defaulting to host) and atomics mode (defaulting to not-allowed), and
// operations against a handle the emulation does not know return
// CUBLAS_STATUS_NOT_INITIALIZED. Installing it swaps the wrapper's native
// call table, so the full lifecycle machinery — registry tracking, status
// translation, close-exactly-once — runs unmodified without a GPU.
//
// Usage in tests:
//
//	lib := emulib.New()
//	defer lib.Install()()
//
//	ctx, err := cublas.NewContext()
//	...
//
// Failure injection forces a fixed status code on a given entry point:
//
//	lib.FailCreate(cublas.StatusAllocFailed)
//
// Limitations: the emulation models session state only. It performs no
// numerical work and does not emulate device memory.
package emulib
