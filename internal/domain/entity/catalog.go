package entity

import (
	"strings"

	"github.com/dillkhus/cafe-pos/internal/domain/enum"
)

// MenuItem is a single priced dish on the menu.
type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Category is a named group of menu items, in menu-file order.
type Category struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Catalog is one serving window's menu, read-only for the lifetime of a
// session. Category order follows the menu file so that flattening keeps
// last-write-wins semantics on duplicate item names.
type Catalog struct {
	Window     enum.ServiceWindow `json:"window"`
	Categories []Category         `json:"categories"`
}

// PriceList is the flattened catalog consumed by the billing engine.
type PriceList map[string]float64

// Flatten collapses the catalog into an item-to-price map. When the same
// item name appears in more than one category the later category wins;
// callers should treat item names as globally unique.
func (c *Catalog) Flatten() PriceList {
	prices := make(PriceList)
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			prices[item.Name] = item.Price
		}
	}
	return prices
}

// Lookup finds an item's display name and price by case-insensitive match,
// the way the original counter flow matched typed dish names.
func (c *Catalog) Lookup(name string) (MenuItem, bool) {
	for _, cat := range c.Categories {
		for _, item := range cat.Items {
			if strings.EqualFold(item.Name, name) {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}
