package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"food-order-backend/internal/cart"
)

// Customer is the checkout identity, resolved from the authenticated
// account plus the form fields the customer typed.
type Customer struct {
	ID    int
	Name  string
	Email string
	Phone string
}

// Delivery is the destination part of the checkout form.
type Delivery struct {
	Address             string
	SpecialInstructions string
}

// ValidationError names the checkout field that was missing or blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ComposeOrders partitions the cart by restaurant and builds one
// unsaved order per restaurant. Group order follows the first
// appearance of each restaurant in the cart, and lines keep their cart
// order inside each group, so the group totals add up to the cart
// total. The caller must reject an empty cart before calling.
func ComposeOrders(lines []cart.Line, customer Customer, delivery Delivery) ([]Order, error) {
	switch {
	case strings.TrimSpace(customer.Name) == "":
		return nil, &ValidationError{Field: "name"}
	case strings.TrimSpace(customer.Phone) == "":
		return nil, &ValidationError{Field: "phone"}
	case strings.TrimSpace(delivery.Address) == "":
		return nil, &ValidationError{Field: "address"}
	}

	groups := make(map[int][]cart.Line)
	seen := make([]int, 0)
	for _, l := range lines {
		if _, ok := groups[l.RestaurantID]; !ok {
			seen = append(seen, l.RestaurantID)
		}
		groups[l.RestaurantID] = append(groups[l.RestaurantID], l)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	orders := make([]Order, 0, len(seen))
	for _, restaurantID := range seen {
		group := groups[restaurantID]

		// deep snapshot so later cart mutations cannot reach into the order
		var items []cart.Line
		if err := copier.Copy(&items, &group); err != nil {
			return nil, err
		}

		orders = append(orders, Order{
			Ref:                 newRef(),
			CustomerID:          customer.ID,
			CustomerName:        strings.TrimSpace(customer.Name),
			CustomerEmail:       customer.Email,
			CustomerPhone:       strings.TrimSpace(customer.Phone),
			HotelOwnerID:        restaurantID,
			RestaurantName:      group[0].RestaurantName,
			Items:               items,
			Total:               cart.TotalPrice(group),
			Status:              StatusPending,
			OrderTime:           now,
			EstimatedTime:       DefaultEstimatedMinutes,
			DeliveryAddress:     strings.TrimSpace(delivery.Address),
			PaymentMethod:       PaymentCashOnDelivery,
			SpecialInstructions: strings.TrimSpace(delivery.SpecialInstructions),
		})
	}

	return orders, nil
}

// newRef produces a short human-quotable order reference.
func newRef() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:8])
}
