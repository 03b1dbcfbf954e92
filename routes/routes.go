package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/naomichiang/POS-system-Cursor/api"
	"github.com/naomichiang/POS-system-Cursor/controllers"
	"github.com/naomichiang/POS-system-Cursor/repository"
	"github.com/naomichiang/POS-system-Cursor/services"
	"github.com/naomichiang/POS-system-Cursor/store"
)

func RegisterRoutes(r *gin.Engine, client *api.Client, db *gorm.DB, orders *store.OrderStore, tables *store.TableSyncStore) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	receiptRepo := repository.NewReceiptRepository(db)
	checkout := services.NewCheckoutService(db, receiptRepo, orders, tables)

	// Controllers
	tableCtrl := controllers.NewTableController(client, orders, tables)
	cartCtrl := controllers.NewCartController(orders)
	billCtrl := controllers.NewBillingController(orders, checkout, receiptRepo)

	// Tables
	r.POST("/table/open", tableCtrl.Open)
	r.GET("/tables", tableCtrl.List)
	r.GET("/tables/:id", tableCtrl.Status)

	// Push channel
	sync := r.Group("/sync")
	{
		sync.POST("/connect", tableCtrl.SyncConnect)
		sync.POST("/disconnect", tableCtrl.SyncDisconnect)
		sync.GET("/status", tableCtrl.SyncStatus)
	}

	// Cart
	cart := r.Group("/cart")
	{
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Billing
	bill := r.Group("/bill")
	{
		bill.GET("", billCtrl.Bill)
		bill.POST("/discount", billCtrl.UpdateDiscount)
		bill.POST("/payment", billCtrl.SetPayment)
	}

	// Order lifecycle + local receipt log
	r.POST("/order/reset", billCtrl.Reset)
	r.POST("/order/checkout", billCtrl.DoCheckout)
	r.GET("/receipts", billCtrl.ListReceipts)
}
