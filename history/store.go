// Package history keeps the bounded record of past explanations.
//
// The store is newest-first and capacity-bounded: adding past capacity
// evicts from the tail (oldest). Every mutation persists synchronously
// through the key-value collaborator, so a crash never loses more than the
// in-flight mutation. The store is safe for concurrent use: the panel reads
// it from command goroutines while the explain goroutine writes it.
package history

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxItems bounds the store when no capacity is configured.
const DefaultMaxItems = 10

// historyKey is the persistence slot in the key-value store.
const historyKey = "ustaad.history"

// Item is a completed explanation record. Immutable once created.
type Item struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Language    string    `json:"language"`
	Explanation string    `json:"explanation"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewID returns a time-ordered unique identifier for a history item.
// IDs are assigned at request start, before the provider call.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4,
		// which keeps uniqueness (the only hard invariant).
		id = uuid.New()
	}
	return id.String()
}

// KV is the persistence collaborator. Values are opaque blobs scoped
// per-user; storage.KV satisfies this, and tests use an in-memory map.
type KV interface {
	Get(key string, def []byte) []byte
	Update(key string, value []byte) error
}

// Store is an ordered, size-bounded collection of history items.
type Store struct {
	kv KV

	mu       sync.Mutex
	items    []Item
	maxItems int
}

// NewStore loads persisted history and bounds it to maxItems.
// maxItems <= 0 selects DefaultMaxItems.
func NewStore(kv KV, maxItems int) *Store {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	s := &Store{kv: kv, maxItems: maxItems}

	data := kv.Get(historyKey, nil)
	if len(data) > 0 {
		// A corrupt blob degrades to empty history rather than failing
		// startup; the next mutation rewrites it.
		var items []Item
		if err := json.Unmarshal(data, &items); err == nil {
			s.items = items
		}
	}
	if len(s.items) > s.maxItems {
		s.items = s.items[:s.maxItems]
	}

	return s
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.kv.Update(historyKey, data)
}

// Add prepends item, evicting from the tail when over capacity, and
// persists.
func (s *Store) Add(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]Item{item}, s.items...)
	if len(s.items) > s.maxItems {
		s.items = s.items[:s.maxItems]
	}
	return s.persist()
}

// GetByID returns the first item with the given id.
func (s *Store) GetByID(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// All returns the items newest-first. The returned slice is a copy.
func (s *Store) All() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Clear empties the store and persists. Clearing an empty store is a no-op
// that still persists the empty state.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist()
}

// SetCapacity changes the bound. Shrinking below the current length
// truncates from the tail immediately and persists; growing only affects
// future adds.
func (s *Store) SetCapacity(n int) error {
	if n <= 0 {
		n = DefaultMaxItems
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxItems = n
	if len(s.items) > n {
		s.items = s.items[:n]
		return s.persist()
	}
	return nil
}
