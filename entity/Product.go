package entity

// Product is the AddToCart input. Quantity 0 means "not given" and is
// treated as 1.
type Product struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	Note      string     `json:"note"`
	Modifiers []Modifier `json:"modifiers"`
}
