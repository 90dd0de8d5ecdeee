package dashboard

import (
	"testing"

	"food-order-backend/internal/menu"
	"food-order-backend/internal/order"
)

func TestStats(t *testing.T) {
	orders := order.NewInMemoryRepository([]order.Order{
		{ID: 1, HotelOwnerID: 5, Total: 25.98, Status: order.StatusPending},
		{ID: 2, HotelOwnerID: 5, Total: 34.48, Status: order.StatusDelivered},
		{ID: 3, HotelOwnerID: 5, Total: 15.99, Status: order.StatusDelivered},
		{ID: 4, HotelOwnerID: 5, Total: 8.50, Status: order.StatusCancelled},
		{ID: 5, HotelOwnerID: 7, Total: 99.99, Status: order.StatusDelivered},
	})
	menus := menu.NewService(menu.NewInMemoryRepository([]menu.Item{
		{ID: 1, Name: "Margherita", Price: 12.99, Category: "Pizza", HotelOwnerID: 5, IsAvailable: true},
		{ID: 2, Name: "Hidden Burger", Price: 9.99, Category: "Burgers", HotelOwnerID: 5, IsAvailable: false},
		{ID: 3, Name: "Sushi Set", Price: 15.99, Category: "Salads", HotelOwnerID: 7, IsAvailable: true},
	}), nil)

	stats, err := NewService(orders, menus).Stats(5)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", stats.TotalOrders)
	}
	if stats.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d, want 1", stats.PendingOrders)
	}
	if want := 34.48 + 15.99; stats.TotalRevenue != want {
		t.Errorf("TotalRevenue = %v, want %v (delivered orders only)", stats.TotalRevenue, want)
	}
	if stats.TotalMenuItems != 2 {
		t.Errorf("TotalMenuItems = %d, want 2", stats.TotalMenuItems)
	}
}

func TestStatsForOwnerWithNoActivity(t *testing.T) {
	stats, err := NewService(order.NewInMemoryRepository(nil),
		menu.NewService(menu.NewInMemoryRepository(nil), nil)).Stats(5)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
