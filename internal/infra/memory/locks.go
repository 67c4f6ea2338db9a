package memory

import (
	"context"
	"sync"
)

type lockMode int

const (
	lockShared lockMode = iota + 1
	lockExclusive
)

// rowLock is a reader/writer lock whose waiters honour context cancellation.
// Waiters park on changed, which is closed and replaced on every release.
type rowLock struct {
	mu      sync.Mutex
	readers int
	writer  bool
	changed chan struct{}
}

func newRowLock() *rowLock {
	return &rowLock{changed: make(chan struct{})}
}

// grant must be called with mu held. held is the mode the caller already owns.
func (l *rowLock) grant(mode, held lockMode) bool {
	switch {
	case mode == lockShared:
		if l.writer {
			return false
		}
		l.readers++
		return true
	case held == lockShared:
		// upgrade: only when the caller is the sole reader
		if l.writer || l.readers != 1 {
			return false
		}
		l.readers = 0
		l.writer = true
		return true
	default:
		if l.writer || l.readers > 0 {
			return false
		}
		l.writer = true
		return true
	}
}

func (l *rowLock) acquire(ctx context.Context, mode, held lockMode) error {
	for {
		l.mu.Lock()
		if l.grant(mode, held) {
			l.mu.Unlock()
			return nil
		}
		wait := l.changed
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wait:
		}
	}
}

func (l *rowLock) tryAcquire(mode, held lockMode) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grant(mode, held)
}

func (l *rowLock) release(mode lockMode) {
	l.mu.Lock()
	if mode == lockExclusive {
		l.writer = false
	} else if l.readers > 0 {
		l.readers--
	}
	close(l.changed)
	l.changed = make(chan struct{})
	l.mu.Unlock()
}

// lockTable hands out one rowLock per key. Locks are never removed; the key
// space is bounded by the number of rows ever touched.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*rowLock
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*rowLock)}
}

func (t *lockTable) get(key string) *rowLock {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[key]
	if !ok {
		l = newRowLock()
		t.locks[key] = l
	}
	return l
}

// lockSet tracks the locks one transaction holds, so re-locking a row is a
// no-op and everything is released together at the end.
type lockSet struct {
	table *lockTable
	held  map[string]lockMode
}

func newLockSet(table *lockTable) *lockSet {
	return &lockSet{table: table, held: make(map[string]lockMode)}
}

func (s *lockSet) lock(ctx context.Context, key string, mode lockMode) error {
	held := s.held[key]
	if held >= mode {
		return nil
	}
	if err := s.table.get(key).acquire(ctx, mode, held); err != nil {
		return err
	}
	s.held[key] = mode
	return nil
}

func (s *lockSet) tryLock(key string, mode lockMode) bool {
	held := s.held[key]
	if held >= mode {
		return true
	}
	if !s.table.get(key).tryAcquire(mode, held) {
		return false
	}
	s.held[key] = mode
	return true
}

func (s *lockSet) unlock(key string) {
	mode, ok := s.held[key]
	if !ok {
		return
	}
	delete(s.held, key)
	s.table.get(key).release(mode)
}

func (s *lockSet) releaseAll() {
	for key := range s.held {
		s.unlock(key)
	}
}
