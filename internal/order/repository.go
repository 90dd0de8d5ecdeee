package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. Status is the
// only column UpdateStatus may touch.
type Repository interface {
	Create(o Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByCustomer(customerID int) ([]Order, error)
	// ListByOwner returns the owner's orders, newest first. An empty
	// status means no status filter.
	ListByOwner(ownerID int, status Status) ([]Order, error)
	UpdateStatus(id int, status Status) error
}

// InMemoryRepository backs handler and dashboard tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	repo := &InMemoryRepository{orders: make([]Order, 0, len(seed)), nextID: 1}

	maxID := 0
	for _, o := range seed {
		repo.orders = append(repo.orders, o)
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == 0 {
		o.ID = r.nextID
		r.nextID++
	}

	r.orders = append(r.orders, o)
	return o, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}

	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByCustomer(customerID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].CustomerID == customerID {
			out = append(out, r.orders[i])
		}
	}

	return out, nil
}

func (r *InMemoryRepository) ListByOwner(ownerID int, status Status) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if o.HotelOwnerID != ownerID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}

	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}

	return ErrNotFound
}
