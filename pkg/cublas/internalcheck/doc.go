// Package internalcheck holds source policy tests for the cublas wrapper.
//
// The tests enforce repository-wide invariants that the compiler cannot,
// most importantly that the unsafe native boundary stays confined to
// internal/bindings. It is not intended for external use.
package internalcheck
