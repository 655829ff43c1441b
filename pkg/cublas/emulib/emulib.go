package emulib

import (
	"sync"

	"github.com/gpukit/cublas-go/internal/bindings"
	"github.com/gpukit/cublas-go/pkg/cublas"
)

// EmulatedVersion is the library version the emulation reports.
const EmulatedVersion = 120800

type session struct {
	pointerMode int32
	atomicsMode int32
}

// Lib is one emulated native library instance with its own handle space.
type Lib struct {
	mu       sync.Mutex
	next     bindings.Handle
	sessions map[bindings.Handle]*session

	createStatus  cublas.Status
	destroyStatus cublas.Status
	getStatus     cublas.Status
	setStatus     cublas.Status
}

// New returns an emulated library with no live sessions.
func New() *Lib {
	return &Lib{
		next:     0x7f0000,
		sessions: make(map[bindings.Handle]*session),
	}
}

// Install swaps this emulation into the wrapper's native call table and
// returns a func restoring the previous table. Typical test usage:
//
//	defer lib.Install()()
func (l *Lib) Install() (restore func()) {
	return bindings.Install(bindings.CallTable{
		Create:         l.create,
		Destroy:        l.destroy,
		GetPointerMode: l.getPointerMode,
		SetPointerMode: l.setPointerMode,
		GetVersion:     l.getVersion,
		GetAtomicsMode: l.getAtomicsMode,
		SetAtomicsMode: l.setAtomicsMode,
	})
}

// FailCreate forces every subsequent create to return the given status.
// StatusSuccess restores normal behavior.
func (l *Lib) FailCreate(st cublas.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.createStatus = st
}

// FailDestroy forces every subsequent destroy to return the given status.
// The session is still torn down: a failed native destroy leaves the handle
// dead, matching real driver behavior.
func (l *Lib) FailDestroy(st cublas.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyStatus = st
}

// FailGets forces every subsequent get-mode/get-version to return the given
// status.
func (l *Lib) FailGets(st cublas.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.getStatus = st
}

// FailSets forces every subsequent set-mode to return the given status.
func (l *Lib) FailSets(st cublas.Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setStatus = st
}

// Sessions returns the number of sessions the emulation considers live.
// Tests compare it with cublas.LiveContexts to detect bookkeeping drift.
func (l *Lib) Sessions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sessions)
}

func (l *Lib) create(h *bindings.Handle) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.createStatus != cublas.StatusSuccess {
		return uint32(l.createStatus)
	}
	l.next += 0x40
	l.sessions[l.next] = &session{
		pointerMode: bindings.NativePointerModeHost,
		atomicsMode: bindings.NativeAtomicsNotAllowed,
	}
	*h = l.next
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) destroy(h bindings.Handle) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sessions[h]; !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	delete(l.sessions, h)
	if l.destroyStatus != cublas.StatusSuccess {
		return uint32(l.destroyStatus)
	}
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) getPointerMode(h bindings.Handle, mode *int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[h]
	if !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	if l.getStatus != cublas.StatusSuccess {
		return uint32(l.getStatus)
	}
	*mode = s.pointerMode
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) setPointerMode(h bindings.Handle, mode int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[h]
	if !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	if l.setStatus != cublas.StatusSuccess {
		return uint32(l.setStatus)
	}
	if mode != bindings.NativePointerModeHost && mode != bindings.NativePointerModeDevice {
		return uint32(cublas.StatusInvalidValue)
	}
	s.pointerMode = mode
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) getVersion(h bindings.Handle, version *int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sessions[h]; !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	if l.getStatus != cublas.StatusSuccess {
		return uint32(l.getStatus)
	}
	*version = EmulatedVersion
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) getAtomicsMode(h bindings.Handle, mode *int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[h]
	if !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	if l.getStatus != cublas.StatusSuccess {
		return uint32(l.getStatus)
	}
	*mode = s.atomicsMode
	return uint32(cublas.StatusSuccess)
}

func (l *Lib) setAtomicsMode(h bindings.Handle, mode int32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sessions[h]
	if !ok {
		return uint32(cublas.StatusNotInitialized)
	}
	if l.setStatus != cublas.StatusSuccess {
		return uint32(l.setStatus)
	}
	if mode != bindings.NativeAtomicsNotAllowed && mode != bindings.NativeAtomicsAllowed {
		return uint32(cublas.StatusInvalidValue)
	}
	s.atomicsMode = mode
	return uint32(cublas.StatusSuccess)
}
