package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(41))

	created, err := repo.Create(Order{
		Ref:            "ORD-AAAA1111",
		CustomerID:     1,
		HotelOwnerID:   5,
		RestaurantName: "Pizza Palace",
		Total:          34.48,
		Status:         StatusPending,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 41 {
		t.Errorf("expected assigned id 41, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByOwnerWithStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	cols := []string{"order_id", "order_ref", "customer_id", "customer_name", "customer_email", "customer_phone",
		"hotel_owner_id", "restaurant_name", "items", "total", "status", "order_time", "estimated_time",
		"delivery_address", "payment_method", "special_instructions"}
	rows := sqlmock.NewRows(cols).
		AddRow(2, "ORD-BBBB2222", 1, "Jane", "jane@example.com", "081",
			5, "Pizza Palace", []byte(`[{"itemId":1,"name":"Margherita","unitPrice":12.99,"quantity":2,"restaurantId":5,"restaurantName":"Pizza Palace"}]`),
			25.98, "pending", "2026-08-30T10:00:00Z", 30,
			"123 Main Street", "Cash on Delivery", "")

	mock.ExpectQuery("FROM orders").WithArgs(5, "pending").WillReturnRows(rows)

	orders, err := repo.ListByOwner(5, StatusPending)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Status != StatusPending {
		t.Errorf("unexpected status %q", orders[0].Status)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Name != "Margherita" {
		t.Errorf("items not decoded: %+v", orders[0].Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatusMissingOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("preparing", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(99, StatusPreparing); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
