package entity

// LedgerEntry is the persisted projection of a customer's most recent
// bill. The repeated user_items/user_price lists hold one element per
// unit purchased (quantity 3 becomes three elements), preserving the flat
// historical record format.
type LedgerEntry struct {
	PhoneNumber    string    `json:"phone_number"`
	VisitingWindow string    `json:"visiting_window"`
	Date           string    `json:"date"`
	Day            string    `json:"day"`
	BillTime       string    `json:"bill_time"`
	UserItems      []string  `json:"user_items"`
	UserPrices     []float64 `json:"user_price"`
	ItemCount      int       `json:"item_count"`
	Subtotal       float64   `json:"subtotal"`
	DiscountAmount float64   `json:"discount_amount"`
	Tax            float64   `json:"tax"`
	Total          float64   `json:"total"`
}

// Ledger maps a customer identity key to that customer's last bill. Only
// the most recent visit is retained per identity.
type Ledger map[string]LedgerEntry

// LedgerKey builds the identity key for a customer. Name alone collides
// across customers sharing a name, so the key is the name+phone composite.
func LedgerKey(name, phone string) string {
	return name + "|" + phone
}

// TotalUnits re-expands the denormalized item list back into a unit count.
func (e LedgerEntry) TotalUnits() int {
	return len(e.UserItems)
}
