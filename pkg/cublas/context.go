package cublas

import (
	"runtime"

	"github.com/gpukit/cublas-go/internal/bindings"
)

// Context exclusively owns one live cuBLAS context handle. It is created via
// NewContext and torn down exactly once via Close; after Close every method
// fails with ErrContextClosed without reaching the native library.
//
// A Context must not be copied. Ownership may be transferred by handing the
// pointer to a new owner; the old owner must not call Close afterwards.
type Context struct {
	h bindings.Handle
}

// NewContext creates a cuBLAS context, allocating resources on the host and
// the device, and registers its handle as live. A finalizer backstops a
// forgotten Close, the same way os.File reclaims descriptors, but callers
// should close explicitly to control when device resources are released.
func NewContext() (*Context, error) {
	h, err := bindings.Create()
	if err != nil {
		return nil, err
	}
	c := &Context{h: h}
	logger.Debug("cublas context created", "handle", uintptr(h))
	runtime.SetFinalizer(c, func(c *Context) { _ = c.Close() })
	return c, nil
}

// Close destroys the context. The handle is unregistered before the native
// destroy call, so even a failed destroy leaves it permanently unusable.
// Close on an already-closed Context is a no-op returning nil.
func (c *Context) Close() error {
	if c == nil || c.h == 0 {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	h := c.h
	c.h = 0
	err := bindings.Destroy(h)
	logger.Debug("cublas context destroyed", "handle", uintptr(h), "err", err)
	return err
}

// PointerMode reads the context's pointer mode from the native library.
func (c *Context) PointerMode() (PointerMode, error) {
	if c == nil || c.h == 0 {
		return 0, ErrContextClosed
	}
	v, err := bindings.GetPointerMode(c.h)
	if err != nil {
		return 0, err
	}
	return pointerModeFromNative(v)
}

// SetPointerMode sets where scalar arguments for subsequent operations are
// expected to reside.
func (c *Context) SetPointerMode(m PointerMode) error {
	if c == nil || c.h == 0 {
		return ErrContextClosed
	}
	v, err := m.native()
	if err != nil {
		return err
	}
	return bindings.SetPointerMode(c.h, v)
}

// AtomicsMode reads the context's atomics mode from the native library.
func (c *Context) AtomicsMode() (AtomicsMode, error) {
	if c == nil || c.h == 0 {
		return 0, ErrContextClosed
	}
	v, err := bindings.GetAtomicsMode(c.h)
	if err != nil {
		return 0, err
	}
	return atomicsModeFromNative(v)
}

// SetAtomicsMode controls whether the native library may use atomic device
// operations.
func (c *Context) SetAtomicsMode(m AtomicsMode) error {
	if c == nil || c.h == 0 {
		return ErrContextClosed
	}
	v, err := m.native()
	if err != nil {
		return err
	}
	return bindings.SetAtomicsMode(c.h, v)
}

// Version returns the native library version associated with this context,
// e.g. 120103 for cuBLAS 12.1.3.
func (c *Context) Version() (int, error) {
	if c == nil || c.h == 0 {
		return 0, ErrContextClosed
	}
	v, err := bindings.GetVersion(c.h)
	return int(v), err
}
