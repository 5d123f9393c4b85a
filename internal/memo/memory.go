// internal/memo/memory.go
//
// In-memory memo of selected guesses, keyed by board signature.
//
// A strategy is deterministic, so two boards with the same dimensions and
// history always get the same next guess. Evaluating many secrets replays
// the same early boards over and over; the memo lets those be answered once.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Process-local; nothing is written to disk.
//   - Optional size cap; once full, new keys are ignored.
package memo

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/mastermind/internal/peg"
)

var ErrNotFound = errors.New("memo: not found")

// Store defines the memo interface for selected guesses.
type Store interface {
	// Save records the guess chosen for key.
	Save(ctx context.Context, key string, guess peg.Code) error

	// Get returns the guess recorded for key, or ErrNotFound.
	Get(ctx context.Context, key string) (peg.Code, error)

	// Len returns the number of recorded keys.
	Len() int
}

// memory is a map-based Store.
type memory struct {
	mu      sync.RWMutex        // guards guesses
	guesses map[string]peg.Code // keyed by board signature
	limit   int                 // 0 means unbounded
}

// NewMemoryStore constructs an unbounded in-memory Store.
func NewMemoryStore() Store { return NewBoundedStore(0) }

// NewBoundedStore constructs an in-memory Store holding at most limit keys.
func NewBoundedStore(limit int) Store {
	return &memory{guesses: make(map[string]peg.Code), limit: limit}
}

// Save adds or updates key. Keys beyond the limit are dropped silently.
func (m *memory) Save(ctx context.Context, key string, guess peg.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.guesses[key]; !ok && m.limit > 0 && len(m.guesses) >= m.limit {
		return nil
	}
	m.guesses[key] = guess
	return nil
}

// Get looks up key.
func (m *memory) Get(ctx context.Context, key string) (peg.Code, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.guesses[key]; ok {
		return g, nil
	}
	return peg.Code{}, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.guesses)
}
