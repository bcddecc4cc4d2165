package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/internal/domain/enum"
	"github.com/dillkhus/cafe-pos/pkg/apperror"
)

// gstRate is the GST applied to the discounted subtotal.
var gstRate = decimal.NewFromFloat(0.18)

// Volume discount tiers, first match wins. Boundaries are strict
// greater-than, so counts of exactly 5, 8 and 11 take the lower tier.
var discountTiers = []struct {
	minExclusive int
	rate         decimal.Decimal
}{
	{11, decimal.NewFromFloat(0.09)},
	{8, decimal.NewFromFloat(0.06)},
	{5, decimal.NewFromFloat(0.03)},
}

// BillingService computes bills from carts and projects them into ledger
// entries. All operations are pure; nothing here touches storage.
type BillingService struct{}

// NewBillingService creates a new billing service
func NewBillingService() *BillingService {
	return &BillingService{}
}

// DiscountRate returns the volume discount rate for a total unit count.
func (s *BillingService) DiscountRate(itemCount int) decimal.Decimal {
	for _, tier := range discountTiers {
		if itemCount > tier.minExclusive {
			return tier.rate
		}
	}
	return decimal.Zero
}

// ComputeBill derives an immutable bill from a cart and a flattened
// catalog at one instant. Deterministic given its inputs: the date, day
// and time fields all come from the single now moment, and monetary
// intermediates are each rounded to two decimals before feeding the next
// formula (discount, then net, then tax, then total). The cumulative
// rounding this produces is intentional and must not be collapsed into a
// single final rounding.
func (s *BillingService) ComputeBill(
	cart entity.Cart,
	prices entity.PriceList,
	name, phone string,
	window enum.ServiceWindow,
	now time.Time,
) (*entity.Bill, error) {
	if cart.IsEmpty() {
		return nil, apperror.ErrEmptyOrder
	}

	var (
		items    []entity.LineItem
		warnings []string
		gross    = decimal.Zero
		count    = 0
	)

	for _, itemName := range cart.SortedItems() {
		qty := cart[itemName]
		price, ok := prices[itemName]
		if !ok {
			// Stale cart entry after a catalog swap: bill at zero and
			// flag it rather than abort the whole order.
			warnings = append(warnings, fmt.Sprintf("%q is no longer on the menu and was billed at 0.00", itemName))
			price = 0
		}

		unit := decimal.NewFromFloat(price)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(qty)))
		gross = gross.Add(lineTotal)
		count += qty

		items = append(items, entity.LineItem{
			Name:      itemName,
			Quantity:  qty,
			UnitPrice: unit.InexactFloat64(),
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	rate := s.DiscountRate(count)
	discount := gross.Mul(rate).Round(2)
	net := gross.Sub(discount).Round(2)
	tax := net.Mul(gstRate).Round(2)
	total := net.Add(tax).Round(2)

	return &entity.Bill{
		BillNo:         fmt.Sprintf("BILL-%s", uuid.New().String()[:8]),
		CustomerName:   name,
		Phone:          phone,
		Window:         window,
		Date:           now.Format("02/01/2006"),
		Day:            now.Weekday().String(),
		BillTime:       now.Format("15:04:05"),
		Items:          items,
		ItemCount:      count,
		Subtotal:       gross.InexactFloat64(),
		DiscountRate:   rate.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		NetSubtotal:    net.InexactFloat64(),
		Tax:            tax.InexactFloat64(),
		Total:          total.InexactFloat64(),
		Warnings:       warnings,
		GeneratedAt:    now,
	}, nil
}

// RenderLedgerEntry projects a bill into the persisted denormalized form.
// The user_items/user_price lists carry one element per unit purchased,
// preserving the flat historical record layout.
func (s *BillingService) RenderLedgerEntry(bill *entity.Bill) entity.LedgerEntry {
	var items []string
	var prices []float64
	for _, line := range bill.Items {
		for i := 0; i < line.Quantity; i++ {
			items = append(items, line.Name)
			prices = append(prices, line.UnitPrice)
		}
	}

	return entity.LedgerEntry{
		PhoneNumber:    bill.Phone,
		VisitingWindow: bill.Window.String(),
		Date:           bill.Date,
		Day:            bill.Day,
		BillTime:       bill.BillTime,
		UserItems:      items,
		UserPrices:     prices,
		ItemCount:      bill.ItemCount,
		Subtotal:       bill.Subtotal,
		DiscountAmount: bill.DiscountAmount,
		Tax:            bill.Tax,
		Total:          bill.Total,
	}
}
