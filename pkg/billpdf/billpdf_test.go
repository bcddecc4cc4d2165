package billpdf

import (
	"bytes"
	"testing"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
)

func TestRender(t *testing.T) {
	bill := &entity.Bill{
		BillNo:       "BILL-abc12345",
		CustomerName: "Amit",
		Phone:        "9999",
		Window:       enum.WindowDay,
		Date:         "14/03/2026",
		Day:          "Saturday",
		BillTime:     "12:30:45",
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

	data, err := Render(bill, Header{CafeName: "Dill-Khus Cafe", Address: "12 MG Road", Phone: "080-1234"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderEmptyItems(t *testing.T) {
	bill := &entity.Bill{
		BillNo:       "BILL-deadbeef",
		CustomerName: "Amit",
		Window:       enum.WindowEvening,
	}

	data, err := Render(bill, Header{CafeName: "Dill-Khus Cafe"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}
