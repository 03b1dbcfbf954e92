package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/naomichiang/POS-system-Cursor/api"
	"github.com/naomichiang/POS-system-Cursor/entity"
	"github.com/naomichiang/POS-system-Cursor/pkg/resp"
	"github.com/naomichiang/POS-system-Cursor/store"
)

type TableController struct {
	API    *api.Client
	Orders *store.OrderStore
	Tables *store.TableSyncStore
}

func NewTableController(client *api.Client, orders *store.OrderStore, tables *store.TableSyncStore) *TableController {
	return &TableController{API: client, Orders: orders, Tables: tables}
}

// ===== Open table =====

type openTableReq struct {
	TableNumber   string         `json:"tableNumber" binding:"required"`
	Diners        int            `json:"diners" binding:"min=0"`
	ServiceType   string         `json:"serviceType"`
	CustomerInfo  map[string]any `json:"customerInfo"`
	CustomerInfo2 map[string]any `json:"customerInfo2"`
}

// Open creates the order upstream and seeds the local stores. An upstream
// failure blocks the order screen: it comes back as 502 with the backend's
// status and body so the operator can see what went wrong and retry.
func (tc *TableController) Open(c *gin.Context) {
	var req openTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// the backend rechecks this; the local check just gives a fast answer
	// when this terminal already knows the table is taken
	if !tc.Tables.GetTableStatus(req.TableNumber).Selectable() {
		resp.Conflict(c, "table is not selectable")
		return
	}

	res, err := tc.API.CreateOrder(c.Request.Context(), api.CreateOrderRequest{
		TableNumber:   req.TableNumber,
		Diners:        req.Diners,
		ServiceType:   req.ServiceType,
		CustomerInfo:  req.CustomerInfo,
		CustomerInfo2: req.CustomerInfo2,
	})
	if err != nil {
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) {
			resp.Upstream(c, reqErr.Status, reqErr.Body)
			return
		}
		resp.ServerError(c, err)
		return
	}

	tableNumber := res.TableNumber
	if tableNumber == "" {
		tableNumber = req.TableNumber
	}
	diners := res.Diners
	if diners == 0 {
		diners = req.Diners
	}

	tc.Orders.SetTable(entity.OrderInfo{
		OrderID:     res.OrderID,
		TableNumber: tableNumber,
		Diners:      diners,
	})

	// optimistic local write; the backend's order_created push for the
	// same table lands on the same write path and is idempotent with it
	status := entity.StatusOccupied
	if res.Status != nil {
		status = entity.TableStatus(*res.Status)
	}
	tc.Tables.SetTableStatus(tableNumber, status)

	// best-effort snapshot reconcile; the push channel covers the rest
	if snap, err := tc.API.ListTables(c.Request.Context()); err == nil {
		tc.Tables.SetTableStatusBatch(snap)
	}

	resp.Created(c, tc.Orders.Info())
}

// ===== Status reads =====

func (tc *TableController) List(c *gin.Context) {
	resp.OK(c, tc.Tables.Snapshot())
}

func (tc *TableController) Status(c *gin.Context) {
	id := c.Param("id")
	status := tc.Tables.GetTableStatus(id)
	resp.OK(c, gin.H{
		"tableId":    id,
		"status":     status,
		"label":      status.Label(),
		"selectable": status.Selectable(),
	})
}

// ===== Push channel lifecycle =====

func (tc *TableController) SyncConnect(c *gin.Context) {
	tc.Tables.ConnectWS()
	resp.OK(c, gin.H{"connected": tc.Tables.Connected()})
}

func (tc *TableController) SyncDisconnect(c *gin.Context) {
	tc.Tables.DisconnectWS()
	resp.OK(c, gin.H{"connected": tc.Tables.Connected()})
}

func (tc *TableController) SyncStatus(c *gin.Context) {
	resp.OK(c, gin.H{"connected": tc.Tables.Connected()})
}
