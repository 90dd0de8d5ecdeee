package menu

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	GetByID(id int) (Item, error)
	Create(item Item) (Item, error)
	Update(id int, item Item) (Item, error)
	Delete(id int) error
	ListByOwner(ownerID int) ([]Item, error)
	// ListAvailableByOwner is the customer's view of a menu. A
	// non-empty categories slice narrows it to those categories.
	ListAvailableByOwner(ownerID int, categories []string) ([]Item, error)
	CountByOwner(ownerID int) (total, available int, err error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []Item
	nextID int
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{items: make([]Item, 0, len(seed)), nextID: 1}

	maxID := 0
	for _, it := range seed {
		r.items = append(r.items, it)
		if it.ID > maxID {
			maxID = it.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}

	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Create(item Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
	}

	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryRepository) Update(id int, update Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			update.ID = id
			update.HotelOwnerID = it.HotelOwnerID
			update.CreatedAt = it.CreatedAt
			r.items[i] = update
			return update, nil
		}
	}

	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

func (r *InMemoryRepository) ListByOwner(ownerID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.items {
		if it.HotelOwnerID == ownerID {
			out = append(out, it)
		}
	}

	return out, nil
}

func (r *InMemoryRepository) ListAvailableByOwner(ownerID int, categories []string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.items {
		if it.HotelOwnerID == ownerID && it.IsAvailable && matchesCategory(it, categories) {
			out = append(out, it)
		}
	}

	return out, nil
}

func matchesCategory(it Item, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if it.Category == c {
			return true
		}
	}
	return false
}

func (r *InMemoryRepository) CountByOwner(ownerID int) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total, available := 0, 0
	for _, it := range r.items {
		if it.HotelOwnerID != ownerID {
			continue
		}
		total++
		if it.IsAvailable {
			available++
		}
	}

	return total, available, nil
}
