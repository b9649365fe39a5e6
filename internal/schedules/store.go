package schedules

import (
	"sort"

	"github.com/puzpuzpuz/xsync/v4"
)

// Store is the persistence abstraction for generated schedules.
// The Repository uses Store for all reads and writes; callers of Repository
// do not need to know which Store is used.
type Store interface {
	Get(name string) (*Record, bool)
	Set(r *Record)
	Delete(name string)
	Names() []string
	Len() int
}

// InMemoryStore is an in-memory implementation of Store backed by a
// concurrent map.
type InMemoryStore struct {
	records *xsync.Map[string, *Record]
}

// NewInMemoryStore returns a new empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: xsync.NewMap[string, *Record](),
	}
}

// Get implements Store.Get.
func (s *InMemoryStore) Get(name string) (*Record, bool) {
	return s.records.Load(name)
}

// Set implements Store.Set.
func (s *InMemoryStore) Set(r *Record) {
	s.records.Store(r.Name, r)
}

// Delete implements Store.Delete.
func (s *InMemoryStore) Delete(name string) {
	s.records.Delete(name)
}

// Names implements Store.Names. Names are returned sorted.
func (s *InMemoryStore) Names() []string {
	names := make([]string, 0, s.records.Size())
	s.records.Range(func(name string, _ *Record) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Len implements Store.Len.
func (s *InMemoryStore) Len() int {
	return s.records.Size()
}
