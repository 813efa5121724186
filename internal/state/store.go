package state

import (
	"sync"
	"time"
)

// Snapshot is the terminal geometry last reported by the backend.
type Snapshot struct {
	Width       int
	Height      int
	HasSize     bool
	LastUpdated time.Time
	Resizes     int // Number of size changes observed
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a new terminal size. Non-positive dimensions are ignored and
// reported as false; repeating the current size is not counted as a resize.
func (s *Store) Update(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.HasSize && s.snapshot.Width == width && s.snapshot.Height == height {
		return true
	}
	if s.snapshot.HasSize {
		s.snapshot.Resizes++
	}
	s.snapshot.Width = width
	s.snapshot.Height = height
	s.snapshot.HasSize = true
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Size returns the recorded size, or the fallback when none is known yet.
func (s *Store) Size(fallbackWidth, fallbackHeight int) (int, int) {
	snap := s.Snapshot()
	if !snap.HasSize {
		return fallbackWidth, fallbackHeight
	}
	return snap.Width, snap.Height
}
