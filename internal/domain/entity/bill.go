package entity

import (
	"time"

	"github.com/dillkhus/cafe-pos/internal/domain/enum"
)

// LineItem is one priced cart entry on a bill.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Bill is the immutable snapshot of a finalized order. All monetary fields
// are already rounded to two decimals in the order the engine computed
// them; nothing here is recomputed after creation.
type Bill struct {
	BillNo       string             `json:"bill_no"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Window       enum.ServiceWindow `json:"visit_window"`

	// Date, Day and BillTime all derive from the same instant captured at
	// checkout, so the fields can never drift across a midnight boundary.
	Date     string `json:"date"`
	Day      string `json:"day"`
	BillTime string `json:"bill_time"`

	Items []LineItem `json:"items"`

	ItemCount      int     `json:"item_count"`
	Subtotal       float64 `json:"subtotal"`
	DiscountRate   float64 `json:"discount_rate"`
	DiscountAmount float64 `json:"discount_amount"`
	NetSubtotal    float64 `json:"net_subtotal"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`

	// Warnings carries non-fatal degradations, e.g. a cart item that was
	// no longer on the menu and was billed at price zero.
	Warnings []string `json:"warnings,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
