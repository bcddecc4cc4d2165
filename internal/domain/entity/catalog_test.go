package entity

import "testing"

func sampleCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{Name: "Coffee", Items: []MenuItem{
				{Name: "Espresso", Price: 80},
				{Name: "Latte", Price: 130},
			}},
			{Name: "Specials", Items: []MenuItem{
				{Name: "Espresso", Price: 95},
			}},
		},
	}
}

func TestCatalogFlattenLastWins(t *testing.T) {
	prices := sampleCatalog().Flatten()

	if len(prices) != 2 {
		t.Errorf("len(prices) = %d, want 2", len(prices))
	}
	if prices["Espresso"] != 95 {
		t.Errorf("Espresso = %v, want 95 from the later category", prices["Espresso"])
	}
	if prices["Latte"] != 130 {
		t.Errorf("Latte = %v, want 130", prices["Latte"])
	}
}

func TestCatalogLookup(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		query    string
		wantName string
		wantOK   bool
	}{
		{"Latte", "Latte", true},
		{"latte", "Latte", true},
		{"LATTE", "Latte", true},
		{"Espresso", "Espresso", true},
		{"Sushi", "", false},
	}

	for _, tt := range tests {
		item, ok := c.Lookup(tt.query)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			continue
		}
		if ok && item.Name != tt.wantName {
			t.Errorf("Lookup(%q) = %q, want %q", tt.query, item.Name, tt.wantName)
		}
	}
}
