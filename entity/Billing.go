package entity

// Discount types. Anything else is computed as DiscountNone.
const (
	DiscountNone    = "none"
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// DefaultServiceChargeRate is the 10% service charge applied after discount.
const DefaultServiceChargeRate = 0.10

// Billing holds the discount and service-charge parameters for the
// current order.
type Billing struct {
	DiscountType      string  `json:"discountType"`
	DiscountValue     float64 `json:"discountValue"`
	ServiceChargeRate float64 `json:"serviceChargeRate"`
}
