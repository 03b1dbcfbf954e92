package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naomichiang/POS-system-Cursor/entity"
	"github.com/naomichiang/POS-system-Cursor/repository"
	"github.com/naomichiang/POS-system-Cursor/store"
)

var (
	ErrNoOpenTable = errors.New("no open table")
	ErrCartEmpty   = errors.New("cart is empty")
)

// CheckoutService settles the active order: freeze the totals into a local
// receipt, mark the table checked-out on this terminal, and reset the
// order store for the next session. The backend learns about the checkout
// through its own flow; the local status write is the usual optimistic
// update and gets overwritten by the next pushed frame either way.
type CheckoutService struct {
	DB       *gorm.DB
	Receipts *repository.ReceiptRepository
	Orders   *store.OrderStore
	Tables   *store.TableSyncStore
}

func NewCheckoutService(db *gorm.DB, rr *repository.ReceiptRepository, orders *store.OrderStore, tables *store.TableSyncStore) *CheckoutService {
	return &CheckoutService{DB: db, Receipts: rr, Orders: orders, Tables: tables}
}

func (s *CheckoutService) Checkout() (*entity.Receipt, error) {
	info := s.Orders.Info()
	if info.TableNumber == "" {
		return nil, ErrNoOpenTable
	}
	items := s.Orders.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	billing := s.Orders.Billing()
	payment := s.Orders.Payment()

	rec := entity.Receipt{
		OrderID:        info.OrderID,
		TableNumber:    info.TableNumber,
		Diners:         info.Diners,
		Subtotal:       s.Orders.Subtotal(),
		DiscountType:   billing.DiscountType,
		DiscountAmount: s.Orders.DiscountAmount(),
		Total:          s.Orders.TotalAmount(),
		Received:       payment.ReceivedAmount,
		Change:         s.Orders.ChangeAmount(),
	}
	for _, item := range items {
		rec.Items = append(rec.Items, entity.ReceiptItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Receipts.Create(tx, &rec)
	})
	if err != nil {
		return nil, err
	}

	s.Tables.SetTableStatus(info.TableNumber, entity.StatusCheckedOut)
	s.Orders.ResetOrder()
	return &rec, nil
}
