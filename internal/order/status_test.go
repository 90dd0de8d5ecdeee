package order

import (
	"errors"
	"testing"
)

func TestTransitionMatrix(t *testing.T) {
	all := []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusPreparing}: true,
		{StatusPending, StatusCancelled}: true,
		{StatusPreparing, StatusReady}:   true,
		{StatusReady, StatusDelivered}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			o := Order{ID: 1, Status: from}
			got, err := Transition(o, to)

			if allowed[[2]Status{from, to}] {
				if err != nil {
					t.Errorf("%s -> %s: expected success, got %v", from, to, err)
					continue
				}
				if got.Status != to {
					t.Errorf("%s -> %s: status not applied, got %s", from, to, got.Status)
				}
				continue
			}

			var ite *InvalidTransitionError
			if !errors.As(err, &ite) {
				t.Errorf("%s -> %s: expected InvalidTransitionError, got %v", from, to, err)
				continue
			}
			if ite.From != from || ite.To != to {
				t.Errorf("%s -> %s: error reports %s -> %s", from, to, ite.From, ite.To)
			}
			if got.Status != from {
				t.Errorf("%s -> %s: status changed on failed transition", from, to)
			}
		}
	}
}

func TestTransitionDoesNotTouchOtherFields(t *testing.T) {
	o := Order{
		ID:             9,
		Ref:            "ORD-AAAA1111",
		CustomerName:   "Jane",
		HotelOwnerID:   3,
		RestaurantName: "Pizza Palace",
		Total:          42.5,
		Status:         StatusPending,
		OrderTime:      "2026-08-30T10:00:00Z",
	}

	got, err := Transition(o, StatusPreparing)
	if err != nil {
		t.Fatal(err)
	}

	o.Status = StatusPreparing
	if got.ID != o.ID || got.Ref != o.Ref || got.Total != o.Total || got.OrderTime != o.OrderTime ||
		got.CustomerName != o.CustomerName || got.RestaurantName != o.RestaurantName {
		t.Errorf("transition modified fields other than status: %+v", got)
	}
}

func TestTerminalStates(t *testing.T) {
	if !StatusDelivered.IsTerminal() {
		t.Error("delivered must be terminal")
	}
	if !StatusCancelled.IsTerminal() {
		t.Error("cancelled must be terminal")
	}
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady} {
		if s.IsTerminal() {
			t.Errorf("%s must not be terminal", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "ready", "delivered", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"", "Pending", "done", "cooking"} {
		if _, err := ParseStatus(s); err != ErrUnknownStatus {
			t.Errorf("ParseStatus(%q): expected ErrUnknownStatus, got %v", s, err)
		}
	}
}
