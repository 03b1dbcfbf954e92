package entity

// StatusOrdering is the lifecycle status a freshly opened order starts in.
// Other lifecycle states are backend-defined and passed through as-is.
const StatusOrdering = "ordering"

// OrderInfo identifies one dine-in session. OrderID stays empty until the
// backend has created the order.
type OrderInfo struct {
	OrderID     string `json:"orderId"`
	TableNumber string `json:"tableNumber"`
	Diners      int    `json:"diners"`
	Status      string `json:"status"`
}
