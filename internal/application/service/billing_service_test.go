package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

var billingNow = time.Date(2026, time.March, 14, 12, 30, 45, 0, time.UTC)

func TestDiscountRate(t *testing.T) {
	s := NewBillingService()

	tests := []struct {
		name  string
		count int
		want  string
	}{
		{"zero items", 0, "0"},
		{"below first tier", 5, "0"},
		{"first tier lower bound", 6, "0.03"},
		{"first tier upper bound", 8, "0.03"},
		{"second tier lower bound", 9, "0.06"},
		{"second tier upper bound", 11, "0.06"},
		{"top tier lower bound", 12, "0.09"},
		{"large order", 50, "0.09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.DiscountRate(tt.count).String(); got != tt.want {
				t.Errorf("DiscountRate(%d) = %s, want %s", tt.count, got, tt.want)
			}
		})
	}
}

func TestComputeBill(t *testing.T) {
	s := NewBillingService()
	prices := entity.PriceList{"Espresso": 80, "Latte": 130}

	tests := []struct {
		name         string
		cart         entity.Cart
		wantCount    int
		wantSubtotal float64
		wantDiscount float64
		wantNet      float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:         "six items take three percent",
			cart:         entity.Cart{"Espresso": 2, "Latte": 4},
			wantCount:    6,
			wantSubtotal: 680,
			wantDiscount: 20.40,
			wantNet:      659.60,
			wantTax:      118.73,
			wantTotal:    778.33,
		},
		{
			name:         "twelve items take nine percent",
			cart:         entity.Cart{"Espresso": 12},
			wantCount:    12,
			wantSubtotal: 960,
			wantDiscount: 86.40,
			wantNet:      873.60,
			wantTax:      157.25,
			wantTotal:    1030.85,
		},
		{
			name:         "single item no discount",
			cart:         entity.Cart{"Latte": 1},
			wantCount:    1,
			wantSubtotal: 130,
			wantDiscount: 0,
			wantNet:      130,
			wantTax:      23.40,
			wantTotal:    153.40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, err := s.ComputeBill(tt.cart, prices, "Amit", "9999", enum.WindowDay, billingNow)
			if err != nil {
				t.Fatalf("ComputeBill() error = %v", err)
			}
			if bill.ItemCount != tt.wantCount {
				t.Errorf("ItemCount = %d, want %d", bill.ItemCount, tt.wantCount)
			}
			if bill.Subtotal != tt.wantSubtotal {
				t.Errorf("Subtotal = %v, want %v", bill.Subtotal, tt.wantSubtotal)
			}
			if bill.DiscountAmount != tt.wantDiscount {
				t.Errorf("DiscountAmount = %v, want %v", bill.DiscountAmount, tt.wantDiscount)
			}
			if bill.NetSubtotal != tt.wantNet {
				t.Errorf("NetSubtotal = %v, want %v", bill.NetSubtotal, tt.wantNet)
			}
			if bill.Tax != tt.wantTax {
				t.Errorf("Tax = %v, want %v", bill.Tax, tt.wantTax)
			}
			if bill.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", bill.Total, tt.wantTotal)
			}
			if len(bill.Warnings) != 0 {
				t.Errorf("Warnings = %v, want none", bill.Warnings)
			}
		})
	}
}

func TestComputeBillMetadata(t *testing.T) {
	s := NewBillingService()
	prices := entity.PriceList{"Espresso": 80}

	bill, err := s.ComputeBill(entity.Cart{"Espresso": 1}, prices, "Amit", "9999", enum.WindowEvening, billingNow)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}

	if bill.Date != "14/03/2026" {
		t.Errorf("Date = %q, want %q", bill.Date, "14/03/2026")
	}
	if bill.Day != "Saturday" {
		t.Errorf("Day = %q, want %q", bill.Day, "Saturday")
	}
	if bill.BillTime != "12:30:45" {
		t.Errorf("BillTime = %q, want %q", bill.BillTime, "12:30:45")
	}
	if !strings.HasPrefix(bill.BillNo, "BILL-") {
		t.Errorf("BillNo = %q, want BILL- prefix", bill.BillNo)
	}
	if bill.Window != enum.WindowEvening {
		t.Errorf("Window = %v, want %v", bill.Window, enum.WindowEvening)
	}
}

func TestComputeBillDeterministicItemOrder(t *testing.T) {
	s := NewBillingService()
	prices := entity.PriceList{"Latte": 130, "Espresso": 80, "Mocha": 150}
	cart := entity.Cart{"Mocha": 1, "Espresso": 1, "Latte": 1}

	bill, err := s.ComputeBill(cart, prices, "Amit", "9999", enum.WindowDay, billingNow)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}

	want := []string{"Espresso", "Latte", "Mocha"}
	for i, line := range bill.Items {
		if line.Name != want[i] {
			t.Errorf("Items[%d].Name = %q, want %q", i, line.Name, want[i])
		}
	}
}

func TestComputeBillEmptyCart(t *testing.T) {
	s := NewBillingService()

	_, err := s.ComputeBill(entity.Cart{}, entity.PriceList{"Espresso": 80}, "Amit", "9999", enum.WindowDay, billingNow)
	if !errors.Is(err, apperror.ErrEmptyOrder) {
		t.Errorf("ComputeBill() error = %v, want ErrEmptyOrder", err)
	}
}

func TestComputeBillStaleItem(t *testing.T) {
	s := NewBillingService()
	prices := entity.PriceList{"Espresso": 80}
	cart := entity.Cart{"Espresso": 1, "Cold Coffee": 2}

	bill, err := s.ComputeBill(cart, prices, "Amit", "9999", enum.WindowDay, billingNow)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}

	if len(bill.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", bill.Warnings)
	}
	if !strings.Contains(bill.Warnings[0], "Cold Coffee") {
		t.Errorf("warning %q does not name the stale item", bill.Warnings[0])
	}
	// The stale units still count toward the discount tier, priced at zero.
	if bill.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", bill.ItemCount)
	}
	if bill.Subtotal != 80 {
		t.Errorf("Subtotal = %v, want 80", bill.Subtotal)
	}
}

func TestRenderLedgerEntry(t *testing.T) {
	s := NewBillingService()
	prices := entity.PriceList{"Espresso": 80, "Latte": 130}

	bill, err := s.ComputeBill(entity.Cart{"Espresso": 2, "Latte": 4}, prices, "Amit", "9999", enum.WindowDay, billingNow)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}

	entry := s.RenderLedgerEntry(bill)

	if entry.PhoneNumber != "9999" {
		t.Errorf("PhoneNumber = %q, want %q", entry.PhoneNumber, "9999")
	}
	if entry.VisitingWindow != "Day" {
		t.Errorf("VisitingWindow = %q, want %q", entry.VisitingWindow, "Day")
	}
	if entry.TotalUnits() != 6 {
		t.Errorf("TotalUnits() = %d, want 6", entry.TotalUnits())
	}
	if len(entry.UserPrices) != 6 {
		t.Errorf("len(UserPrices) = %d, want 6", len(entry.UserPrices))
	}
	// Quantity 2 of Espresso expands to two elements.
	espressos := 0
	for _, item := range entry.UserItems {
		if item == "Espresso" {
			espressos++
		}
	}
	if espressos != 2 {
		t.Errorf("Espresso units = %d, want 2", espressos)
	}
	if entry.Total != bill.Total {
		t.Errorf("Total = %v, want %v", entry.Total, bill.Total)
	}
}
