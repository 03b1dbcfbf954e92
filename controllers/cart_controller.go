package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/naomichiang/POS-system-Cursor/entity"
	"github.com/naomichiang/POS-system-Cursor/pkg/resp"
	"github.com/naomichiang/POS-system-Cursor/store"
)

type CartController struct {
	Orders *store.OrderStore
}

func NewCartController(orders *store.OrderStore) *CartController {
	return &CartController{Orders: orders}
}

type addItemReq struct {
	ID        string            `json:"id" binding:"required"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Quantity  int               `json:"quantity"`
	Note      string            `json:"note"`
	Modifiers []entity.Modifier `json:"modifiers"`
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cc.Orders.AddToCart(entity.Product{
		ID:        req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Note:      req.Note,
		Modifiers: req.Modifiers,
	})
	resp.OK(c, cc.cartPayload())
}

type updateItemReq struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets a line's quantity; 0 or less removes the line.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cc.Orders.UpdateQuantity(c.Param("id"), req.Quantity)
	resp.OK(c, cc.cartPayload())
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.Orders.RemoveFromCart(c.Param("id"))
	resp.OK(c, cc.cartPayload())
}

func (cc *CartController) Clear(c *gin.Context) {
	cc.Orders.ClearCart()
	resp.OK(c, cc.cartPayload())
}

func (cc *CartController) cartPayload() gin.H {
	return gin.H{
		"items":    cc.Orders.Items(),
		"subtotal": cc.Orders.Subtotal(),
	}
}
