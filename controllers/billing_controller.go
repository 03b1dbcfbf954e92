package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/naomichiang/POS-system-Cursor/entity"
	"github.com/naomichiang/POS-system-Cursor/pkg/resp"
	"github.com/naomichiang/POS-system-Cursor/repository"
	"github.com/naomichiang/POS-system-Cursor/services"
	"github.com/naomichiang/POS-system-Cursor/store"
)

type BillingController struct {
	Orders   *store.OrderStore
	Checkout *services.CheckoutService
	Receipts *repository.ReceiptRepository
}

func NewBillingController(orders *store.OrderStore, checkout *services.CheckoutService, receipts *repository.ReceiptRepository) *BillingController {
	return &BillingController{Orders: orders, Checkout: checkout, Receipts: receipts}
}

// Bill returns the whole running bill in one read so the UI never mixes
// values from two different states.
func (bc *BillingController) Bill(c *gin.Context) {
	resp.OK(c, gin.H{
		"order":          bc.Orders.Info(),
		"items":          bc.Orders.Items(),
		"billing":        bc.Orders.Billing(),
		"payment":        bc.Orders.Payment(),
		"subtotal":       bc.Orders.Subtotal(),
		"discountAmount": bc.Orders.DiscountAmount(),
		"totalAmount":    bc.Orders.TotalAmount(),
		"changeAmount":   bc.Orders.ChangeAmount(),
	})
}

type discountReq struct {
	Type  string `json:"type"`
	Value any    `json:"value"` // UI may send a number or a numeric string
}

func (bc *BillingController) UpdateDiscount(c *gin.Context) {
	var req discountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bc.Orders.UpdateDiscount(req.Type, toNumber(req.Value))
	resp.OK(c, gin.H{
		"billing":        bc.Orders.Billing(),
		"discountAmount": bc.Orders.DiscountAmount(),
		"totalAmount":    bc.Orders.TotalAmount(),
	})
}

type paymentReq struct {
	ReceivedAmount float64                `json:"receivedAmount"`
	Details        []entity.PaymentDetail `json:"details"`
	IsPaid         bool                   `json:"isPaid"`
}

func (bc *BillingController) SetPayment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	bc.Orders.SetPayment(req.ReceivedAmount, req.Details, req.IsPaid)
	resp.OK(c, gin.H{
		"payment":      bc.Orders.Payment(),
		"totalAmount":  bc.Orders.TotalAmount(),
		"changeAmount": bc.Orders.ChangeAmount(),
	})
}

func (bc *BillingController) Reset(c *gin.Context) {
	bc.Orders.ResetOrder()
	resp.OK(c, bc.Orders.Info())
}

func (bc *BillingController) DoCheckout(c *gin.Context) {
	rec, err := bc.Checkout.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrNoOpenTable) || errors.Is(err, services.ErrCartEmpty) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, rec)
}

func (bc *BillingController) ListReceipts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	recs, err := bc.Receipts.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, recs)
}

// toNumber mirrors the fail-soft Number(v) || 0 the billing ops promise:
// anything that doesn't look like a number counts as 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
