package entity

// PaymentDetail is one tendered payment entry (method id per the payment
// method config: cash, credit, mobile, gift).
type PaymentDetail struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// Payment captures what the customer has handed over for the current order.
type Payment struct {
	ReceivedAmount float64         `json:"receivedAmount"`
	Details        []PaymentDetail `json:"details"`
	IsPaid         bool            `json:"isPaid"`
}
