package request

// IdentityRequest carries the customer's confirmed identity
type IdentityRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// SetItemRequest sets an item's quantity in the cart. Quantity zero
// removes the item, so it is intentionally not marked required.
type SetItemRequest struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
}
