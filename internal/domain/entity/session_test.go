package entity

import (
	"testing"
	"time"

	"github.com/dillkhus/cafe-pos/internal/domain/enum"
)

var sessionNow = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"amit", "Amit"},
		{"AMIT", "Amit"},
		{"  amit  ", "Amit"},
		{"a", "A"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewOrderSession(enum.WindowDay, sessionNow)
	if s.State != enum.StateCollectingIdentity {
		t.Fatalf("initial state = %v, want collecting_identity", s.State)
	}

	if err := s.SetIdentity("amit", "9999", sessionNow); err != nil {
		t.Fatalf("SetIdentity() error = %v", err)
	}
	if s.State != enum.StateBrowsingMenu {
		t.Errorf("state = %v, want browsing_menu", s.State)
	}
	if s.CustomerName != "Amit" {
		t.Errorf("CustomerName = %q, want Amit", s.CustomerName)
	}

	if err := s.SetItem("Espresso", 2, sessionNow); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}
	if s.State != enum.StateBuildingCart {
		t.Errorf("state = %v, want building_cart", s.State)
	}

	// Further mutations stay in the cart-building state.
	if err := s.SetItem("Latte", 1, sessionNow); err != nil {
		t.Fatalf("second SetItem() error = %v", err)
	}

	bill := &Bill{Total: 100}
	if err := s.AttachBill(bill, sessionNow); err != nil {
		t.Fatalf("AttachBill() error = %v", err)
	}
	if s.State != enum.StateBillDisplayed {
		t.Errorf("state = %v, want bill_displayed", s.State)
	}
	if !s.Cart.IsEmpty() {
		t.Errorf("cart = %v, want cleared", s.Cart)
	}
}

func TestSessionInvalidTransitions(t *testing.T) {
	t.Run("cart before identity", func(t *testing.T) {
		s := NewOrderSession(enum.WindowDay, sessionNow)
		if err := s.SetItem("Espresso", 1, sessionNow); err == nil {
			t.Error("SetItem() error = nil, want error")
		}
	})

	t.Run("bill before cart", func(t *testing.T) {
		s := NewOrderSession(enum.WindowDay, sessionNow)
		s.SetIdentity("Amit", "9999", sessionNow)
		if err := s.AttachBill(&Bill{}, sessionNow); err == nil {
			t.Error("AttachBill() error = nil, want error")
		}
	})

	t.Run("identity twice", func(t *testing.T) {
		s := NewOrderSession(enum.WindowDay, sessionNow)
		s.SetIdentity("Amit", "9999", sessionNow)
		if err := s.SetIdentity("Neha", "8888", sessionNow); err == nil {
			t.Error("second SetIdentity() error = nil, want error")
		}
	})

	t.Run("mutation after bill", func(t *testing.T) {
		s := NewOrderSession(enum.WindowDay, sessionNow)
		s.SetIdentity("Amit", "9999", sessionNow)
		s.SetItem("Espresso", 1, sessionNow)
		s.AttachBill(&Bill{}, sessionNow)
		if err := s.SetItem("Espresso", 2, sessionNow); err == nil {
			t.Error("SetItem() after bill error = nil, want error")
		}
	})

	t.Run("clear before cart state", func(t *testing.T) {
		s := NewOrderSession(enum.WindowDay, sessionNow)
		if err := s.ClearCart(sessionNow); err == nil {
			t.Error("ClearCart() error = nil, want error")
		}
	})
}

func TestLedgerKeyComposite(t *testing.T) {
	s := NewOrderSession(enum.WindowDay, sessionNow)
	s.SetIdentity("amit", "9999", sessionNow)
	if got := s.LedgerKey(); got != "Amit|9999" {
		t.Errorf("LedgerKey() = %q, want %q", got, "Amit|9999")
	}
}

func TestCartSetItem(t *testing.T) {
	c := make(Cart)
	c.SetItem("Espresso", 2)
	c.SetItem("Latte", 4)

	if c.ItemCount() != 6 {
		t.Errorf("ItemCount() = %d, want 6", c.ItemCount())
	}

	c.SetItem("Espresso", 0)
	if _, ok := c["Espresso"]; ok {
		t.Error("zero quantity should remove the entry")
	}
	c.SetItem("Latte", -1)
	if !c.IsEmpty() {
		t.Errorf("cart = %v, want empty", c)
	}
}
