package bindings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable returns a minimal working native implementation handing out
// sequential handle values.
func fakeTable() CallTable {
	next := Handle(0x1000)
	return CallTable{
		Create: func(h *Handle) uint32 {
			next += 0x10
			*h = next
			return uint32(StatusSuccess)
		},
		Destroy: func(Handle) uint32 { return uint32(StatusSuccess) },
		GetPointerMode: func(_ Handle, mode *int32) uint32 {
			*mode = NativePointerModeHost
			return uint32(StatusSuccess)
		},
		SetPointerMode: func(Handle, int32) uint32 { return uint32(StatusSuccess) },
		GetVersion: func(_ Handle, version *int32) uint32 {
			*version = 120103
			return uint32(StatusSuccess)
		},
		GetAtomicsMode: func(_ Handle, mode *int32) uint32 {
			*mode = NativeAtomicsNotAllowed
			return uint32(StatusSuccess)
		},
		SetAtomicsMode: func(Handle, int32) uint32 { return uint32(StatusSuccess) },
	}
}

func install(t *testing.T, table CallTable) {
	t.Helper()
	restore := Install(table)
	t.Cleanup(restore)
}

func TestCreateTracksHandle(t *testing.T) {
	install(t, fakeTable())

	h, err := Create()
	require.NoError(t, err)
	assert.True(t, ContextLive(h))

	require.NoError(t, Destroy(h))
	assert.False(t, ContextLive(h))
}

func TestCreateStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   error
	}{
		{"not initialized", StatusNotInitialized, ErrNotInitialized},
		{"arch mismatch", StatusArchMismatch, ErrArchMismatch},
		{"alloc failed", StatusAllocFailed, ErrAllocFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := fakeTable()
			table.Create = func(*Handle) uint32 { return uint32(tt.status) }
			install(t, table)

			before := LiveContexts()
			_, err := Create()
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, LiveContexts(), "failed create must not track anything")
		})
	}
}

func TestCreateUnknownStatus(t *testing.T) {
	table := fakeTable()
	table.Create = func(*Handle) uint32 { return uint32(StatusInternalError) }
	install(t, table)

	_, err := Create()
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StatusInternalError, se.Status)
	assert.Contains(t, se.Error(), "CUBLAS_STATUS_INTERNAL_ERROR")
}

func TestDestroyUntracksBeforeNativeCall(t *testing.T) {
	table := fakeTable()
	table.Destroy = func(Handle) uint32 { return uint32(StatusNotInitialized) }
	install(t, table)

	h, err := Create()
	require.NoError(t, err)

	// The native destroy fails, but the handle must still be gone: a context
	// that failed to tear down is never usable again.
	require.ErrorIs(t, Destroy(h), ErrNotInitialized)
	assert.False(t, ContextLive(h))

	require.ErrorIs(t, Destroy(h), ErrStaleHandle)
}

func TestDoubleDestroyRejected(t *testing.T) {
	install(t, fakeTable())

	h, err := Create()
	require.NoError(t, err)
	require.NoError(t, Destroy(h))
	require.ErrorIs(t, Destroy(h), ErrStaleHandle)
}

func TestPointerModeAssertsLiveness(t *testing.T) {
	install(t, fakeTable())

	h, err := Create()
	require.NoError(t, err)
	require.NoError(t, Destroy(h))

	assert.Panics(t, func() { _, _ = GetPointerMode(h) })
	assert.Panics(t, func() { _ = SetPointerMode(h, NativePointerModeDevice) })
	assert.Panics(t, func() { _, _ = GetVersion(h) })
	assert.Panics(t, func() { _, _ = GetAtomicsMode(h) })
	assert.Panics(t, func() { _ = SetAtomicsMode(h, NativeAtomicsAllowed) })
}

func TestPointerModeStatusMapping(t *testing.T) {
	table := fakeTable()
	table.GetPointerMode = func(Handle, *int32) uint32 { return uint32(StatusNotInitialized) }
	table.SetPointerMode = func(Handle, int32) uint32 { return uint32(StatusExecutionFailed) }
	install(t, table)

	h, err := Create()
	require.NoError(t, err)
	defer func() { _ = Destroy(h) }()

	_, err = GetPointerMode(h)
	require.ErrorIs(t, err, ErrNotInitialized)

	err = SetPointerMode(h, NativePointerModeDevice)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StatusExecutionFailed, se.Status)
}

func TestVersionAndAtomics(t *testing.T) {
	install(t, fakeTable())

	h, err := Create()
	require.NoError(t, err)
	defer func() { _ = Destroy(h) }()

	version, err := GetVersion(h)
	require.NoError(t, err)
	assert.Equal(t, int32(120103), version)

	mode, err := GetAtomicsMode(h)
	require.NoError(t, err)
	assert.Equal(t, NativeAtomicsNotAllowed, mode)

	require.NoError(t, SetAtomicsMode(h, NativeAtomicsAllowed))
}

func TestCallsFailWhenNotLoaded(t *testing.T) {
	install(t, CallTable{})

	_, err := Create()
	require.ErrorIs(t, err, ErrNotLoaded)
	require.ErrorIs(t, Destroy(Handle(0x1)), ErrNotLoaded)
	_, err = GetPointerMode(Handle(0x1))
	require.ErrorIs(t, err, ErrNotLoaded)
	require.ErrorIs(t, SetPointerMode(Handle(0x1), 0), ErrNotLoaded)
	_, err = GetVersion(Handle(0x1))
	require.ErrorIs(t, err, ErrNotLoaded)
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "CUBLAS_STATUS_SUCCESS", StatusSuccess.String())
	assert.Equal(t, "CUBLAS_STATUS_ARCH_MISMATCH", StatusArchMismatch.String())
	assert.Equal(t, "CUBLAS_STATUS(42)", Status(42).String())
}

func TestStaleHandleErrorIsWrapped(t *testing.T) {
	install(t, fakeTable())

	h, err := Create()
	require.NoError(t, err)
	require.NoError(t, Destroy(h))

	err = Destroy(h)
	require.ErrorIs(t, err, ErrStaleHandle)
	assert.True(t, errors.Is(err, ErrStaleHandle))
}
