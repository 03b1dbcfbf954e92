package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/naomichiang/POS-system-Cursor/entity"
)

// Client talks to the upstream restaurant backend. The backend pushes
// table updates over the websocket; this client only covers the REST side
// (open table, table snapshot).
type Client struct {
	BaseURL    string
	TerminalID string
	HTTP       *http.Client
}

func NewClient(baseURL, terminalID string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		TerminalID: terminalID,
		HTTP:       &http.Client{Timeout: 10 * time.Second},
	}
}

// RequestError carries the backend's answer to a failed request: the HTTP
// status plus the parsed error body (JSON when parseable, raw text
// otherwise). This is the one failure in the core that propagates to the
// operator instead of being absorbed — "open table failed" must block the
// order screen.
type RequestError struct {
	Status int
	Body   any
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("open table failed: status %d", e.Status)
}

type CreateOrderRequest struct {
	TableNumber   string         `json:"tableNumber"`
	Diners        int            `json:"diners"`
	ServiceType   string         `json:"serviceType"`
	CustomerInfo  map[string]any `json:"customerInfo"`
	CustomerInfo2 map[string]any `json:"customerInfo2"`
}

type CreateOrderResponse struct {
	OrderID     string `json:"orderId"`
	TableNumber string `json:"tableNumber"`
	Diners      int    `json:"diners"`
	// Status is the numeric table status after opening; nil when the
	// backend omits it.
	Status *int `json:"status"`
}

// CreateOrder opens a table. ServiceType defaults to "dine-in" and the
// two free-form option objects are sent as empty objects when nil, per the
// backend contract. Non-2xx answers come back as *RequestError; no retry.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderRequest) (*CreateOrderResponse, error) {
	if in.ServiceType == "" {
		in.ServiceType = "dine-in"
	}
	if in.CustomerInfo == nil {
		in.CustomerInfo = map[string]any{}
	}
	if in.CustomerInfo2 == nil {
		in.CustomerInfo2 = map[string]any{}
	}

	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newRequestError(res)
	}

	var out CreateOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTables fetches the full table-status snapshot, used for bulk
// reconciliation after (re)connecting. Callers treat failures as
// best-effort: the push channel and local writes still work without it.
func (c *Client) ListTables(ctx context.Context) (map[string]entity.TableStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/tables", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newRequestError(res)
	}

	var out map[string]entity.TableStatus
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.TerminalID != "" {
		req.Header.Set("X-Terminal-ID", c.TerminalID)
	}
}

func newRequestError(res *http.Response) *RequestError {
	raw, _ := io.ReadAll(res.Body)

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &RequestError{Status: res.StatusCode, Body: string(raw)}
	}
	return &RequestError{Status: res.StatusCode, Body: parsed}
}
