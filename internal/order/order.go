package order

import (
	"errors"
	"fmt"

	"food-order-backend/internal/cart"
)

// Status is the lifecycle state of a persisted order. Only the owning
// restaurant moves an order forward.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var ErrUnknownStatus = errors.New("unknown order status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// transitions is the full set of legal status changes. delivered and
// cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// InvalidTransitionError reports an illegal status change attempt.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %q to %q", e.From, e.To)
}

// Transition returns a copy of the order with the new status, or an
// *InvalidTransitionError. It never mutates its input and touches no
// field but Status; persisting the result is the caller's business.
func Transition(o Order, target Status) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return o, &InvalidTransitionError{From: o.Status, To: target}
	}
	o.Status = target
	return o, nil
}

const (
	// PaymentCashOnDelivery is the only supported payment method.
	PaymentCashOnDelivery = "Cash on Delivery"

	// DefaultEstimatedMinutes is the preparation estimate stamped on
	// every new order.
	DefaultEstimatedMinutes = 30
)

// Order is a restaurant-scoped purchase record. Items, Total and
// OrderTime are frozen at creation; Status is the only field that
// changes afterwards.
type Order struct {
	ID  int    `json:"orderId"`
	Ref string `json:"orderRef"`

	CustomerID    int    `json:"customerId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	HotelOwnerID   int    `json:"hotelOwnerId"`
	RestaurantName string `json:"restaurantName"`

	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`

	Status        Status `json:"status"`
	OrderTime     string `json:"orderTime"`
	EstimatedTime int    `json:"estimatedTime"`

	DeliveryAddress     string `json:"deliveryAddress"`
	PaymentMethod       string `json:"paymentMethod"`
	SpecialInstructions string `json:"specialInstructions"`
}
