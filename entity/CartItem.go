package entity

// Modifier is one selected option on a cart line (e.g. portion=large).
// Billing never looks inside; any surcharge is already folded into the
// line's unit price.
type Modifier struct {
	Key   string  `json:"key"`
	Value string  `json:"value"`
	Label string  `json:"label,omitempty"`
	Price float64 `json:"price,omitempty"`
}

// CartItem is one product line in the cart, unique per product id.
type CartItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"` // unit price, option surcharges included
	Quantity  int        `json:"quantity"`
	Note      string     `json:"note"`
	Modifiers []Modifier `json:"modifiers"`
}
