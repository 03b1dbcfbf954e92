package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/naomichiang/POS-system-Cursor/api"
	"github.com/naomichiang/POS-system-Cursor/entity"
	"github.com/naomichiang/POS-system-Cursor/store"
)

type fixture struct {
	router *gin.Engine
	orders *store.OrderStore
	tables *store.TableSyncStore
}

// newFixture wires the full router against a fake upstream backend.
func newFixture(t *testing.T, upstream http.HandlerFunc) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Receipt{}, &entity.ReceiptItem{}))

	orders := store.NewOrderStore(0.1)
	tables := store.NewTableSyncStore("", "terminal-test")

	r := gin.New()
	RegisterRoutes(r, api.NewClient(srv.URL, "terminal-test"), db, orders, tables)
	return &fixture{router: r, orders: orders, tables: tables}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var parsed map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func okUpstream(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders":
			assert.Equal(t, "terminal-test", r.Header.Get("X-Terminal-ID"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"orderId":"o-1","tableNumber":"B1","diners":2,"status":1}`))
		case "/api/tables":
			w.Write([]byte(`{"B1":1,"C2":5}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestOpenTable(t *testing.T) {
	t.Run("seeds order and status map", func(t *testing.T) {
		f := newFixture(t, okUpstream(t))

		w, body := f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)
		require.Equal(t, http.StatusCreated, w.Code)

		data := body["data"].(map[string]any)
		assert.Equal(t, "o-1", data["orderId"])
		assert.Equal(t, "B1", data["tableNumber"])
		assert.Equal(t, "ordering", data["status"])

		// optimistic write plus snapshot reconcile
		assert.Equal(t, entity.StatusOccupied, f.tables.GetTableStatus("B1"))
		assert.Equal(t, entity.StatusCleaning, f.tables.GetTableStatus("C2"))
	})

	t.Run("occupied table can't be reopened from this terminal", func(t *testing.T) {
		f := newFixture(t, okUpstream(t))
		f.tables.SetTableStatus("B1", entity.StatusOccupied)

		w, _ := f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reserved table is openable", func(t *testing.T) {
		f := newFixture(t, okUpstream(t))
		f.tables.SetTableStatus("B1", entity.StatusReserved)

		w, _ := f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("upstream failure blocks and carries the backend error", func(t *testing.T) {
		f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"occupied"}`))
		})

		w, body := f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)
		require.Equal(t, http.StatusBadGateway, w.Code)

		upstream := body["upstream"].(map[string]any)
		assert.Equal(t, float64(http.StatusConflict), upstream["status"])
		assert.Equal(t, map[string]any{"error": "occupied"}, upstream["body"])

		// nothing was seeded
		assert.Empty(t, f.orders.Info().TableNumber)
		assert.Equal(t, entity.StatusAvailable, f.tables.GetTableStatus("B1"))
	})

	t.Run("missing table number is a bad request", func(t *testing.T) {
		f := newFixture(t, okUpstream(t))
		w, _ := f.do(t, http.MethodPost, "/table/open", `{"diners":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartAndBill(t *testing.T) {
	f := newFixture(t, okUpstream(t))
	f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)

	w, _ := f.do(t, http.MethodPost, "/cart/items", `{"id":"rice","name":"炒飯","price":100,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	// same id merges instead of duplicating
	_, body := f.do(t, http.MethodPost, "/cart/items", `{"id":"rice","price":100}`)
	items := body["data"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]any)["quantity"])

	// percent discount, value as a numeric string
	w, body = f.do(t, http.MethodPost, "/bill/discount", `{"type":"percent","value":"10"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 30, body["data"].(map[string]any)["discountAmount"].(float64), 1e-9)

	_, body = f.do(t, http.MethodGet, "/bill", "")
	bill := body["data"].(map[string]any)
	assert.InDelta(t, 300, bill["subtotal"].(float64), 1e-9)
	assert.InDelta(t, (300-30)*1.1, bill["totalAmount"].(float64), 1e-9)

	// non-numeric discount value falls back to zero, no error
	w, body = f.do(t, http.MethodPost, "/bill/discount", `{"type":"percent","value":"ten"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0, body["data"].(map[string]any)["discountAmount"].(float64), 1e-9)

	// item without an id is rejected at the boundary
	w, _ = f.do(t, http.MethodPost, "/cart/items", `{"price":100}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	f := newFixture(t, okUpstream(t))

	// checkout with nothing open is refused
	w, _ := f.do(t, http.MethodPost, "/order/checkout", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	f.do(t, http.MethodPost, "/table/open", `{"tableNumber":"B1","diners":2}`)
	f.do(t, http.MethodPost, "/cart/items", `{"id":"rice","price":100,"quantity":2}`)
	f.do(t, http.MethodPost, "/bill/payment", `{"receivedAmount":250,"details":[{"method":"cash","amount":250}],"isPaid":true}`)

	w, body := f.do(t, http.MethodPost, "/order/checkout", "")
	require.Equal(t, http.StatusCreated, w.Code)
	rec := body["data"].(map[string]any)
	assert.InDelta(t, 220, rec["total"].(float64), 1e-9)
	assert.InDelta(t, 30, rec["change"].(float64), 1e-9)

	// table flips to checked-out locally, store is reset
	_, body = f.do(t, http.MethodGet, "/tables/B1", "")
	assert.Equal(t, float64(entity.StatusCheckedOut), body["data"].(map[string]any)["status"])
	assert.Empty(t, f.orders.Items())

	// the receipt is in the local log
	_, body = f.do(t, http.MethodGet, "/receipts", "")
	recs := body["data"].([]any)
	require.Len(t, recs, 1)
}

func TestSyncEndpoints(t *testing.T) {
	f := newFixture(t, okUpstream(t))

	// no WS_URL configured: connect is a silent no-op
	w, body := f.do(t, http.MethodPost, "/sync/connect", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["data"].(map[string]any)["connected"])

	w, _ = f.do(t, http.MethodPost, "/sync/disconnect", "")
	assert.Equal(t, http.StatusOK, w.Code)

	_, body = f.do(t, http.MethodGet, "/sync/status", "")
	assert.Equal(t, false, body["data"].(map[string]any)["connected"])
}
