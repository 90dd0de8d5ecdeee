package order

import (
	"errors"

	"food-order-backend/internal/cart"
	"food-order-backend/internal/feed"
)

var ErrForbidden = errors.New("order belongs to another restaurant")

// Service persists composed orders and runs status transitions. The
// hub may be nil (tests); events are then dropped.
type Service struct {
	repo Repository
	hub  *feed.Hub
}

func NewService(repo Repository, hub *feed.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Checkout composes one order per restaurant and persists them one by
// one. On a persistence failure it stops and returns the orders
// created so far together with the error; earlier orders stay
// persisted and the caller keeps the cart intact so the customer can
// retry.
func (s *Service) Checkout(lines []cart.Line, customer Customer, delivery Delivery) ([]Order, error) {
	drafts, err := ComposeOrders(lines, customer, delivery)
	if err != nil {
		return nil, err
	}

	created := make([]Order, 0, len(drafts))
	for _, draft := range drafts {
		o, err := s.repo.Create(draft)
		if err != nil {
			return created, err
		}
		created = append(created, o)
		s.publish(feed.OrderTopic(o.HotelOwnerID), "order_created", o)
	}

	return created, nil
}

func (s *Service) ListByCustomer(customerID int) ([]Order, error) {
	return s.repo.ListByCustomer(customerID)
}

// ListByOwner returns the owner's orders, optionally filtered by
// status. "all" and "" both mean no filter (the owner UI has an "all"
// tab).
func (s *Service) ListByOwner(ownerID int, statusFilter string) ([]Order, error) {
	if statusFilter == "" || statusFilter == "all" {
		return s.repo.ListByOwner(ownerID, "")
	}

	status, err := ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ownerID, status)
}

// UpdateStatus applies one status-machine transition on behalf of the
// owning restaurant. The order is reloaded first so the transition
// always runs against the persisted state.
func (s *Service) UpdateStatus(ownerID, orderID int, target Status) (Order, error) {
	o, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if o.HotelOwnerID != ownerID {
		return Order{}, ErrForbidden
	}

	updated, err := Transition(o, target)
	if err != nil {
		return Order{}, err
	}

	if err := s.repo.UpdateStatus(orderID, target); err != nil {
		return Order{}, err
	}

	s.publish(feed.OrderTopic(updated.HotelOwnerID), "order_status_changed", updated)
	return updated, nil
}

func (s *Service) publish(topic, eventType string, o Order) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(topic, eventType, o)
}
