package order

import (
	"errors"
	"testing"

	"food-order-backend/internal/cart"
)

var (
	testCustomer = Customer{ID: 1, Name: "Jane", Email: "jane@example.com", Phone: "0812345678"}
	testDelivery = Delivery{Address: "123 Main Street", SpecialInstructions: "ring twice"}
)

func TestComposeOrdersSplitsByRestaurant(t *testing.T) {
	lines := []cart.Line{
		{ItemID: 1, Name: "Margherita", UnitPrice: 12.99, Quantity: 2, RestaurantID: 10, RestaurantName: "Pizza Palace"},
		{ItemID: 2, Name: "Garlic Bread", UnitPrice: 8.50, Quantity: 1, RestaurantID: 10, RestaurantName: "Pizza Palace"},
		{ItemID: 3, Name: "Sushi Set", UnitPrice: 15.99, Quantity: 1, RestaurantID: 20, RestaurantName: "Sushi World"},
	}

	orders, err := ComposeOrders(lines, testCustomer, testDelivery)
	if err != nil {
		t.Fatal(err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	first, second := orders[0], orders[1]
	if first.HotelOwnerID != 10 || second.HotelOwnerID != 20 {
		t.Errorf("groups must keep first-seen order, got %d then %d", first.HotelOwnerID, second.HotelOwnerID)
	}
	if first.Total != 34.48 {
		t.Errorf("expected first total 34.48, got %v", first.Total)
	}
	if second.Total != 15.99 {
		t.Errorf("expected second total 15.99, got %v", second.Total)
	}
	if len(first.Items) != 2 || len(second.Items) != 1 {
		t.Errorf("unexpected item split: %d and %d", len(first.Items), len(second.Items))
	}
	if first.RestaurantName != "Pizza Palace" || second.RestaurantName != "Sushi World" {
		t.Errorf("restaurant names not carried over: %q, %q", first.RestaurantName, second.RestaurantName)
	}
}

func TestComposeOrdersTotalsMatchCart(t *testing.T) {
	lines := []cart.Line{
		{ItemID: 1, UnitPrice: 12.99, Quantity: 2, RestaurantID: 10, RestaurantName: "A"},
		{ItemID: 2, UnitPrice: 8.50, Quantity: 1, RestaurantID: 10, RestaurantName: "A"},
		{ItemID: 3, UnitPrice: 15.99, Quantity: 1, RestaurantID: 20, RestaurantName: "B"},
		{ItemID: 4, UnitPrice: 3.25, Quantity: 4, RestaurantID: 30, RestaurantName: "C"},
		{ItemID: 5, UnitPrice: 6.75, Quantity: 2, RestaurantID: 20, RestaurantName: "B"},
	}

	orders, err := ComposeOrders(lines, testCustomer, testDelivery)
	if err != nil {
		t.Fatal(err)
	}

	sum := 0.0
	for _, o := range orders {
		sum += o.Total
	}
	if want := cart.TotalPrice(lines); sum != want {
		t.Errorf("order totals sum to %v, cart total is %v", sum, want)
	}

	// every line appears in exactly one order, under its restaurant
	seen := make(map[int]int)
	for _, o := range orders {
		for _, item := range o.Items {
			seen[item.ItemID]++
			if item.RestaurantID != o.HotelOwnerID {
				t.Errorf("item %d filed under restaurant %d", item.ItemID, o.HotelOwnerID)
			}
		}
	}
	for _, l := range lines {
		if seen[l.ItemID] != 1 {
			t.Errorf("item %d appears %d times across orders", l.ItemID, seen[l.ItemID])
		}
	}
}

func TestComposeOrdersDefaults(t *testing.T) {
	lines := []cart.Line{{ItemID: 1, UnitPrice: 5, Quantity: 1, RestaurantID: 10, RestaurantName: "A"}}

	orders, err := ComposeOrders(lines, testCustomer, testDelivery)
	if err != nil {
		t.Fatal(err)
	}

	o := orders[0]
	if o.Status != StatusPending {
		t.Errorf("new orders start pending, got %q", o.Status)
	}
	if o.PaymentMethod != PaymentCashOnDelivery {
		t.Errorf("unexpected payment method %q", o.PaymentMethod)
	}
	if o.EstimatedTime != DefaultEstimatedMinutes {
		t.Errorf("unexpected estimate %d", o.EstimatedTime)
	}
	if o.OrderTime == "" {
		t.Error("order time must be stamped")
	}
	if o.Ref == "" {
		t.Error("order ref must be assigned")
	}
	if o.CustomerEmail != "jane@example.com" || o.CustomerID != 1 {
		t.Errorf("customer identity not carried over: %+v", o)
	}
	if o.DeliveryAddress != "123 Main Street" || o.SpecialInstructions != "ring twice" {
		t.Errorf("delivery details not carried over: %+v", o)
	}
}

func TestComposeOrdersValidation(t *testing.T) {
	lines := []cart.Line{{ItemID: 1, UnitPrice: 5, Quantity: 1, RestaurantID: 10, RestaurantName: "A"}}

	cases := []struct {
		name     string
		customer Customer
		delivery Delivery
		field    string
	}{
		{"blank name", Customer{Name: "  ", Phone: "081"}, testDelivery, "name"},
		{"blank phone", Customer{Name: "Jane", Phone: ""}, testDelivery, "phone"},
		{"blank address", Customer{Name: "Jane", Phone: "081"}, Delivery{Address: " "}, "address"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := ComposeOrders(lines, tc.customer, tc.delivery)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Field)
			}
			if orders != nil {
				t.Errorf("no drafts may be produced on validation failure, got %d", len(orders))
			}
		})
	}
}

func TestComposeOrdersSnapshotsItems(t *testing.T) {
	lines := []cart.Line{{ItemID: 1, Name: "Pad Thai", UnitPrice: 9, Quantity: 1, RestaurantID: 10, RestaurantName: "A"}}

	orders, err := ComposeOrders(lines, testCustomer, testDelivery)
	if err != nil {
		t.Fatal(err)
	}

	lines[0].Quantity = 99
	lines[0].Name = "changed"

	if orders[0].Items[0].Quantity != 1 || orders[0].Items[0].Name != "Pad Thai" {
		t.Errorf("order items must be a snapshot, got %+v", orders[0].Items[0])
	}
}
