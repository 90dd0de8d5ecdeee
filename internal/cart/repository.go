package cart

import "sync"

// Repository stores the line list per customer. All cart semantics
// (increment on duplicate add, remove on zero quantity) live in the
// Service; repositories only load and store.
type Repository interface {
	Get(userID int) ([]Line, error)
	Put(userID int, lines []Line) error
	Clear(userID int) error
}

// InMemoryRepository keeps carts in process memory. It backs tests and
// single-instance deployments without Redis.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int][]Line)}
}

func (r *InMemoryRepository) Get(userID int) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := r.carts[userID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) Put(userID int, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]Line, len(lines))
	copy(stored, lines)
	r.carts[userID] = stored
	return nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
