package entity

import "sort"

// Cart is the in-progress, mutable selection of items for one order.
// Every entry holds a quantity of at least one; setting a quantity of
// zero or less removes the entry.
type Cart map[string]int

// SetItem sets (does not increment) the quantity for an item. A quantity
// of zero or less removes the item from the cart.
func (c Cart) SetItem(name string, quantity int) {
	if quantity <= 0 {
		delete(c, name)
		return
	}
	c[name] = quantity
}

// ItemCount is the total number of units across all entries.
func (c Cart) ItemCount() int {
	count := 0
	for _, qty := range c {
		count += qty
	}
	return count
}

// IsEmpty reports whether the cart holds no items.
func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Clear removes every entry.
func (c Cart) Clear() {
	for name := range c {
		delete(c, name)
	}
}

// SortedItems returns the cart's item names in stable alphabetical order
// so bills render the same line order on every computation.
func (c Cart) SortedItems() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	copied := make(Cart, len(c))
	for name, qty := range c {
		copied[name] = qty
	}
	return copied
}
