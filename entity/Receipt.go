package entity

import (
	"gorm.io/gorm"
)

// Receipt is one settled order in the terminal's local log. The log is an
// offline audit trail; the backend keeps its own authoritative copy.
type Receipt struct {
	gorm.Model
	OrderID     string `json:"orderId"`
	TableNumber string `json:"tableNumber"`
	Diners      int    `json:"diners"`

	Subtotal       float64 `json:"subtotal"`
	DiscountType   string  `json:"discountType"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
	Received       float64 `json:"received"`
	Change         float64 `json:"change"`

	Items []ReceiptItem `json:"items"`
}

// ReceiptItem is one cart line frozen at checkout time.
type ReceiptItem struct {
	gorm.Model
	ReceiptID uint `json:"receiptId"`

	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Note      string  `json:"note"`
}
