package schedules

import (
	"errors"
	"sync"
	"time"
)

// Repository defines the concurrency-safe contract for keeping generated
// schedules.
type Repository interface {
	// Save stores r under r.Name, replacing any schedule of the same name.
	// A new name is rejected with ErrCapacityReached when the repository is full.
	Save(r *Record) error

	// Get returns the schedule stored under name.
	Get(name string) (*Record, bool)

	// Delete removes the schedule stored under name. Deleting a missing
	// schedule is a no-op.
	Delete(name string) error

	// Names returns the stored schedule names in sorted order.
	Names() []string

	// Count returns the number of stored schedules. Used for metrics.
	Count() int
}

var (
	// ErrCapacityReached is returned when saving a new schedule into a full
	// repository.
	ErrCapacityReached = errors.New("schedule capacity reached")

	// ErrEmptyName is returned when saving a record without a name.
	ErrEmptyName = errors.New("schedule name is empty")
)

// DefaultCapacity is the number of schedules kept when no capacity is configured.
const DefaultCapacity = 256

// InMemoryRepository is a concurrency-safe in-memory implementation of Repository.
// It uses a Store for persistence; by default that is an InMemoryStore.
type InMemoryRepository struct {
	mu       sync.Mutex
	store    Store
	capacity int
}

// NewInMemoryRepository constructs a repository with a default in-memory store.
// If capacity <= 0, DefaultCapacity is used.
func NewInMemoryRepository(capacity int) *InMemoryRepository {
	return NewInMemoryRepositoryWithStore(NewInMemoryStore(), capacity)
}

// NewInMemoryRepositoryWithStore constructs a repository that uses the given Store.
func NewInMemoryRepositoryWithStore(store Store, capacity int) *InMemoryRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryRepository{store: store, capacity: capacity}
}

// Save implements Repository.Save.
func (r *InMemoryRepository) Save(rec *Record) error {
	if rec.Name == "" {
		return ErrEmptyName
	}

	// Capacity check and insert must not interleave with another Save.
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store.Get(rec.Name); !exists && r.store.Len() >= r.capacity {
		return ErrCapacityReached
	}

	rec.SavedAt = time.Now().UTC()
	r.store.Set(rec)
	return nil
}

// Get implements Repository.Get.
func (r *InMemoryRepository) Get(name string) (*Record, bool) {
	return r.store.Get(name)
}

// Delete implements Repository.Delete.
func (r *InMemoryRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store.Delete(name)
	return nil
}

// Names implements Repository.Names.
func (r *InMemoryRepository) Names() []string {
	return r.store.Names()
}

// Count implements Repository.Count.
func (r *InMemoryRepository) Count() int {
	return r.store.Len()
}
