package services

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// keyedLocks serializes critical sections per UUID key. Entries are
// refcounted and removed once the last holder releases, so the table does
// not grow with every key ever seen.
type keyedLocks struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{entries: make(map[uuid.UUID]*lockEntry)}
}

func (l *keyedLocks) acquire(id uuid.UUID) *lockEntry {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return e
}

func (l *keyedLocks) release(id uuid.UUID, e *lockEntry) {
	e.mu.Unlock()

	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, id)
	}
	l.mu.Unlock()
}

// lock acquires the mutex for a single key. The returned function releases it.
func (l *keyedLocks) lock(id uuid.UUID) func() {
	e := l.acquire(id)
	return func() { l.release(id, e) }
}

// lockAll acquires the mutexes for every given key in sorted order, so two
// operations touching overlapping key sets can never deadlock. Duplicate keys
// are locked once. The returned function releases in reverse order.
func (l *keyedLocks) lockAll(ids []uuid.UUID) func() {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	sorted := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	held := make([]*lockEntry, len(sorted))
	for i, id := range sorted {
		held[i] = l.acquire(id)
	}
	return func() {
		for i := len(sorted) - 1; i >= 0; i-- {
			l.release(sorted[i], held[i])
		}
	}
}

func (l *keyedLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
