package data

import (
	"sync"
	"time"
)

// SnapshotStore keeps the most recently loaded dataset in memory with a
// TTL, so repeated correlation requests against the same files do not
// re-read and re-parse them. The engine itself never caches; this sits
// strictly on the loading side.
type SnapshotStore struct {
	mu        sync.RWMutex
	dataset   *Dataset
	loadedAt  time.Time
	ttl       time.Duration
	loadFn    func() (*Dataset, error)
}

// NewSnapshotStore wraps a load function with TTL'd memoization.
// A non-positive ttl disables expiry.
func NewSnapshotStore(ttl time.Duration, loadFn func() (*Dataset, error)) *SnapshotStore {
	return &SnapshotStore{ttl: ttl, loadFn: loadFn}
}

// Get returns the cached dataset, reloading when stale or never loaded.
func (s *SnapshotStore) Get() (*Dataset, error) {
	s.mu.RLock()
	if s.dataset != nil && !s.expired() {
		ds := s.dataset
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	return s.Refresh()
}

// Refresh forces a reload regardless of TTL. The scheduler calls this
// on its event-refresh cadence.
func (s *SnapshotStore) Refresh() (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.loadFn()
	if err != nil {
		// Keep serving the previous snapshot on a failed reload.
		if s.dataset != nil {
			return s.dataset, nil
		}
		return nil, err
	}
	s.dataset = ds
	s.loadedAt = time.Now()
	return ds, nil
}

// LoadedAt reports when the current snapshot was taken.
func (s *SnapshotStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *SnapshotStore) expired() bool {
	if s.ttl <= 0 {
		return false
	}
	return time.Since(s.loadedAt) > s.ttl
}
