package store

import (
	"math"
	"sync"

	"github.com/naomichiang/POS-system-Cursor/entity"
)

// OrderStore is the single source of truth for the active order: identity,
// cart lines, discount/service-charge config and payment capture. Money
// values are never stored; every getter recomputes from current state.
//
// Operations never fail. Bad numeric input falls back to a safe zero — on a
// kiosk a silently wrong zero beats a crash mid-order.
type OrderStore struct {
	mu          sync.Mutex
	serviceRate float64 // configured rate, restored on reset

	info    entity.OrderInfo
	items   []entity.CartItem
	billing entity.Billing
	payment entity.Payment
}

// NewOrderStore builds an empty store. serviceChargeRate < 0 falls back to
// the default 10%.
func NewOrderStore(serviceChargeRate float64) *OrderStore {
	if serviceChargeRate < 0 || math.IsNaN(serviceChargeRate) {
		serviceChargeRate = entity.DefaultServiceChargeRate
	}
	s := &OrderStore{serviceRate: serviceChargeRate}
	s.reset()
	return s
}

// SetTable replaces the whole order identity, no merge: fields left zero in
// the input reset to empty, except Status which defaults to "ordering".
// The cart is intentionally NOT cleared here; that stays the caller's job
// (ResetOrder or explicit cart ops).
func (s *OrderStore) SetTable(info entity.OrderInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if info.Status == "" {
		info.Status = entity.StatusOrdering
	}
	s.info = info
}

// AddToCart appends a product, or bumps the quantity when a line with the
// same product id already exists. Lines are keyed on the bare id, so the
// same base item with different modifiers merges into one line — known
// behavior, kept until the product side decides otherwise.
// Quantity 0 counts as 1; negative price/quantity are the caller's problem.
func (s *OrderStore) AddToCart(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := p.Quantity
	if qty == 0 {
		qty = 1
	}

	for i, item := range s.items {
		if item.ID == p.ID {
			item.Quantity += qty
			s.items[i] = item
			return
		}
	}

	s.items = append(s.items, entity.CartItem{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  qty,
		Note:      p.Note,
		Modifiers: p.Modifiers,
	})
}

// UpdateQuantity sets the quantity of an existing line; qty <= 0 removes
// it. Unknown ids are a no-op.
func (s *OrderStore) UpdateQuantity(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(id)
		return
	}
	for i, item := range s.items {
		if item.ID == id {
			item.Quantity = qty
			s.items[i] = item
			return
		}
	}
}

// RemoveFromCart drops the line with the given product id, if present.
func (s *OrderStore) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *OrderStore) removeLocked(id string) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart without touching order identity, billing
// config or payment.
func (s *OrderStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// UpdateDiscount stores the discount type verbatim (unknown types simply
// compute as no discount) and the value coerced to a usable non-negative
// number; NaN/Inf and negatives become 0 instead of erroring.
func (s *OrderStore) UpdateDiscount(discountType string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		value = 0
	}
	s.billing.DiscountType = discountType
	s.billing.DiscountValue = value
}

// SetPayment replaces the whole payment capture.
func (s *OrderStore) SetPayment(received float64, details []entity.PaymentDetail, isPaid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if math.IsNaN(received) || math.IsInf(received, 0) {
		received = 0
	}
	s.payment = entity.Payment{
		ReceivedAmount: received,
		Details:        details,
		IsPaid:         isPaid,
	}
}

// ResetOrder puts order identity, cart, billing config and payment back to
// their initial values in one step. There are no partial resets.
func (s *OrderStore) ResetOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *OrderStore) reset() {
	s.info = entity.OrderInfo{Status: entity.StatusOrdering}
	s.items = nil
	s.billing = entity.Billing{
		DiscountType:      entity.DiscountNone,
		DiscountValue:     0,
		ServiceChargeRate: s.serviceRate,
	}
	s.payment = entity.Payment{}
}

// Info returns the current order identity.
func (s *OrderStore) Info() entity.OrderInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Items returns a snapshot copy of the cart lines.
func (s *OrderStore) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Billing returns the current discount/service-charge config.
func (s *OrderStore) Billing() entity.Billing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.billing
}

// Payment returns the current payment capture.
func (s *OrderStore) Payment() entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payment
}

// Subtotal is the sum of price * quantity over all cart lines.
func (s *OrderStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *OrderStore) subtotalLocked() float64 {
	var sum float64
	for _, item := range s.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// DiscountAmount derives the discount from the current config: percent of
// subtotal, a flat amount, or 0 for none/unrecognized types.
func (s *OrderStore) DiscountAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountLocked()
}

func (s *OrderStore) discountLocked() float64 {
	switch s.billing.DiscountType {
	case entity.DiscountPercent:
		return s.subtotalLocked() * (s.billing.DiscountValue / 100)
	case entity.DiscountAmount:
		return s.billing.DiscountValue
	default:
		return 0
	}
}

// TotalAmount is (subtotal − discount) × (1 + serviceChargeRate). The
// service charge applies to the post-discount amount; that ordering is
// billing policy, don't change it.
func (s *OrderStore) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *OrderStore) totalLocked() float64 {
	afterDiscount := s.subtotalLocked() - s.discountLocked()
	return afterDiscount * (1 + s.billing.ServiceChargeRate)
}

// ChangeAmount is received − total, clamped at 0. Detecting underpayment
// is the caller's concern.
func (s *OrderStore) ChangeAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Max(0, s.payment.ReceivedAmount-s.totalLocked())
}
