package service

import (
	"strings"
	"testing"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/pkg/printer"
)

func receiptFixtureBill() *entity.Bill {
	return &entity.Bill{
		BillNo:         "BILL-abc12345",
		CustomerName:   "Amit",
		Phone:          "9999",
		Window:         enum.WindowDay,
		Date:           "14/03/2026",
		Day:            "Saturday",
		BillTime:       "12:30:45",
		Items: []entity.LineItem{
			{Name: "Espresso", Quantity: 2, UnitPrice: 80, LineTotal: 160},
			{Name: "Latte", Quantity: 4, UnitPrice: 130, LineTotal: 520},
		},
		ItemCount:      6,
		Subtotal:       680,
		DiscountRate:   0.03,
		DiscountAmount: 20.40,
		NetSubtotal:    659.60,
		Tax:            118.73,
		Total:          778.33,
	}
}

func TestFormatBillReceipt(t *testing.T) {
	cafe := config.CafeConfig{Name: "Dill-Khus Cafe", Address: "12 MG Road", Phone: "080-1234"}
	svc := NewPrinterService(printer.NewNullPrinter(), nil, cafe, "none", 32)

	out := string(svc.FormatBillReceipt(receiptFixtureBill()))

	for _, want := range []string{
		"Dill-Khus Cafe",
		"12 MG Road",
		"BILL-abc12345",
		"Amit",
		"Espresso",
		"Latte",
		"@ 130.00 each",
		"680.00",
		"-20.40",
		"659.60",
		"118.73",
		"778.33",
		"Thank you for visiting!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestFormatBillReceiptNoDiscount(t *testing.T) {
	bill := receiptFixtureBill()
	bill.DiscountRate = 0
	bill.DiscountAmount = 0
	bill.NetSubtotal = bill.Subtotal

	cafe := config.CafeConfig{Name: "Dill-Khus Cafe"}
	svc := NewPrinterService(printer.NewNullPrinter(), nil, cafe, "none", 32)

	out := string(svc.FormatBillReceipt(bill))
	if strings.Contains(out, "Discount") {
		t.Error("receipt shows a discount line for an undiscounted bill")
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name           string
		printerType    string
		wantConfigured bool
	}{
		{"no printer", "none", false},
		{"usb printer", "usb", true},
		{"network printer", "network", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPrinterService(printer.NewNullPrinter(), nil, config.CafeConfig{}, tt.printerType, 32)
			status := svc.GetStatus()
			if status.Configured != tt.wantConfigured {
				t.Errorf("Configured = %v, want %v", status.Configured, tt.wantConfigured)
			}
			if status.Type != tt.printerType {
				t.Errorf("Type = %q, want %q", status.Type, tt.printerType)
			}
		})
	}
}
