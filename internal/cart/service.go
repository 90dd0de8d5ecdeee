package cart

import (
	"errors"
	"sync"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must not be negative")
	ErrCheckoutInFlight = errors.New("checkout in progress, cart is locked")
)

// ServiceInterface is the slice of cart behaviour the order handler
// needs during checkout.
type ServiceInterface interface {
	Get(userID int) ([]Line, error)
	ClearLocked(userID int) error
	BeginCheckout(userID int) error
	EndCheckout(userID int)
}

// Service owns cart mutation semantics. Every mutation is refused
// while a checkout for the same user is in flight, so the order
// composer always reads a stable snapshot.
type Service struct {
	repo Repository

	mu          sync.Mutex
	checkingOut map[int]struct{}
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, checkingOut: make(map[int]struct{})}
}

// AddItem appends the line with quantity 1, or increments the existing
// line with the same ItemID by 1. The incoming line's Quantity field
// is ignored.
func (s *Service) AddItem(userID int, line Line) ([]Line, error) {
	if err := s.ensureUnlocked(userID); err != nil {
		return nil, err
	}

	lines, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ItemID == line.ItemID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		line.Quantity = 1
		lines = append(lines, line)
	}

	if err := s.repo.Put(userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveItem deletes the line with the given item id. A missing id is
// a no-op, not an error.
func (s *Service) RemoveItem(userID, itemID int) ([]Line, error) {
	if err := s.ensureUnlocked(userID); err != nil {
		return nil, err
	}

	lines, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}

	kept := lines[:0]
	for _, l := range lines {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}

	if err := s.repo.Put(userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// UpdateQuantity sets the line's quantity exactly. Zero removes the
// line; negative values are rejected.
func (s *Service) UpdateQuantity(userID, itemID, quantity int) ([]Line, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveItem(userID, itemID)
	}
	if err := s.ensureUnlocked(userID); err != nil {
		return nil, err
	}

	lines, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}

	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity = quantity
			break
		}
	}

	if err := s.repo.Put(userID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) Get(userID int) ([]Line, error) {
	return s.repo.Get(userID)
}

func (s *Service) Clear(userID int) error {
	if err := s.ensureUnlocked(userID); err != nil {
		return err
	}
	return s.repo.Clear(userID)
}

// ClearLocked empties the cart while the caller still holds the
// checkout lock. Only the checkout flow uses it, after every order
// draft has been persisted.
func (s *Service) ClearLocked(userID int) error {
	return s.repo.Clear(userID)
}

// BeginCheckout locks the user's cart for the duration of order
// composition and persistence.
func (s *Service) BeginCheckout(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.checkingOut[userID]; busy {
		return ErrCheckoutInFlight
	}
	s.checkingOut[userID] = struct{}{}
	return nil
}

// EndCheckout releases the lock taken by BeginCheckout.
func (s *Service) EndCheckout(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.checkingOut, userID)
}

func (s *Service) ensureUnlocked(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.checkingOut[userID]; busy {
		return ErrCheckoutInFlight
	}
	return nil
}
