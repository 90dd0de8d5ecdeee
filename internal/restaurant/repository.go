package restaurant

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("restaurant profile not found")

type Repository interface {
	Get(ownerID int) (Profile, error)
	// Save inserts or replaces the owner's profile.
	Save(profile Profile) (Profile, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int]Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{profiles: make(map[int]Profile)}
}

func (r *InMemoryRepository) Get(ownerID int) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[ownerID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) Save(profile Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[profile.HotelOwnerID] = profile
	return profile, nil
}
