package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackUntrackExists(t *testing.T) {
	s := New[uintptr]("test handle")

	require.False(t, s.Exists(0x10))

	s.Track(0x10)
	assert.True(t, s.Exists(0x10))
	assert.Equal(t, 1, s.Len())

	require.True(t, s.Untrack(0x10))
	assert.False(t, s.Exists(0x10))
	assert.Equal(t, 0, s.Len())
}

func TestUntrackAbsentHandle(t *testing.T) {
	s := New[uintptr]("test handle")
	assert.False(t, s.Untrack(0x20), "untracking an absent handle must report false")
}

func TestTrackDuplicatePanics(t *testing.T) {
	s := New[uintptr]("test handle")
	s.Track(0x30)
	assert.Panics(t, func() { s.Track(0x30) })
}

func TestAssertPanicsOnStaleHandle(t *testing.T) {
	s := New[uintptr]("test handle")
	s.Track(0x40)
	assert.NotPanics(t, func() { s.Assert(0x40) })

	require.True(t, s.Untrack(0x40))
	assert.Panics(t, func() { s.Assert(0x40) })
}

func TestKindsDoNotCollide(t *testing.T) {
	contexts := New[uintptr]("context")
	streams := New[uintptr]("stream")

	contexts.Track(0x50)
	assert.True(t, contexts.Exists(0x50))
	assert.False(t, streams.Exists(0x50))
}

func TestConcurrentTrackUntrack(t *testing.T) {
	s := New[uint64]("test handle")

	const goroutines = 32
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				// Each goroutine owns a disjoint handle range, mirroring how
				// every context handle has exactly one owner.
				h := uint64(g*iterations + i + 1)
				s.Track(h)
				if !s.Exists(h) {
					t.Errorf("handle %d not live after Track", h)
				}
				if !s.Untrack(h) {
					t.Errorf("handle %d vanished before Untrack", h)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 0, s.Len(), "all handles should be gone after the loops")
}

func TestConcurrentDestroyRace(t *testing.T) {
	s := New[uint64]("test handle")

	for i := 0; i < 100; i++ {
		h := uint64(i + 1)
		s.Track(h)

		var wg sync.WaitGroup
		wins := make(chan bool, 2)
		wg.Add(2)
		for j := 0; j < 2; j++ {
			go func() {
				defer wg.Done()
				wins <- s.Untrack(h)
			}()
		}
		wg.Wait()
		close(wins)

		winners := 0
		for won := range wins {
			if won {
				winners++
			}
		}
		require.Equal(t, 1, winners, "exactly one destroyer may win")
	}
}
