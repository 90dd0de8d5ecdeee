package menu

import (
	"errors"
	"time"

	"food-order-backend/internal/feed"
)

var ErrForbidden = errors.New("menu item belongs to another restaurant")

// ServiceInterface is the slice of menu behaviour other feature
// packages (restaurant directory, dashboard) need.
type ServiceInterface interface {
	ListByOwner(ownerID int) ([]Item, error)
	ListAvailableByOwner(ownerID int, categories []string) ([]Item, error)
	CountByOwner(ownerID int) (total, available int, err error)
}

type Service struct {
	repo Repository
	hub  *feed.Hub
}

func NewService(repo Repository, hub *feed.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(item Item) (Item, error) {
	item.IsAvailable = true
	if item.CreatedAt == "" {
		item.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	created, err := s.repo.Create(item)
	if err != nil {
		return Item{}, err
	}
	s.publish(created.HotelOwnerID, "item_created", created)
	return created, nil
}

func (s *Service) Update(ownerID, id int, item Item) (Item, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Item{}, err
	}
	if existing.HotelOwnerID != ownerID {
		return Item{}, ErrForbidden
	}

	updated, err := s.repo.Update(id, item)
	if err != nil {
		return Item{}, err
	}
	s.publish(updated.HotelOwnerID, "item_updated", updated)
	return updated, nil
}

func (s *Service) Delete(ownerID, id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.HotelOwnerID != ownerID {
		return ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(existing.HotelOwnerID, "item_deleted", existing)
	return nil
}

// ToggleAvailability flips the item's availability flag. Toggling an
// item that no longer exists is a no-op, not an error; the owner's
// screen may simply be behind the live feed.
func (s *Service) ToggleAvailability(ownerID, id int) (Item, error) {
	existing, err := s.repo.GetByID(id)
	if err == ErrNotFound {
		return Item{}, nil
	}
	if err != nil {
		return Item{}, err
	}
	if existing.HotelOwnerID != ownerID {
		return Item{}, ErrForbidden
	}

	existing.IsAvailable = !existing.IsAvailable
	updated, err := s.repo.Update(id, existing)
	if err == ErrNotFound {
		return Item{}, nil
	}
	if err != nil {
		return Item{}, err
	}

	s.publish(updated.HotelOwnerID, "item_toggled", updated)
	return updated, nil
}

func (s *Service) ListByOwner(ownerID int) ([]Item, error) {
	return s.repo.ListByOwner(ownerID)
}

func (s *Service) ListAvailableByOwner(ownerID int, categories []string) ([]Item, error) {
	return s.repo.ListAvailableByOwner(ownerID, categories)
}

func (s *Service) CountByOwner(ownerID int) (int, int, error) {
	return s.repo.CountByOwner(ownerID)
}

func (s *Service) publish(ownerID int, eventType string, item Item) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(feed.MenuTopic(ownerID), eventType, item)
}
