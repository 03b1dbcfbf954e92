package entity

import (
	"encoding/json"
	"fmt"
)

// Push-channel message types this client reacts to. Everything else is
// dropped at the parse boundary.
const (
	SyncTableUpdated = "table_updated"
	SyncOrderCreated = "order_created"
)

// SyncMessage is a recognized, validated push-channel notification.
type SyncMessage struct {
	Type    string
	TableID string
	Status  TableStatus
}

// ParseSyncMessage validates one push-channel frame. It returns ok=false
// for malformed JSON, unknown types, and frames missing the table
// identifier or status; callers are expected to drop those silently.
// The backend may carry the identifier as "tableId" or "tableNumber";
// "tableId" wins when both are present. Identifiers are always coerced to
// strings so the same table can't appear under two key types.
func ParseSyncMessage(data []byte) (SyncMessage, bool) {
	var frame struct {
		Type        string   `json:"type"`
		TableID     any      `json:"tableId"`
		TableNumber any      `json:"tableNumber"`
		Status      *float64 `json:"status"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return SyncMessage{}, false
	}
	if frame.Type != SyncTableUpdated && frame.Type != SyncOrderCreated {
		return SyncMessage{}, false
	}

	id := frame.TableID
	if id == nil {
		id = frame.TableNumber
	}
	tableID := coerceTableID(id)
	if tableID == "" || frame.Status == nil {
		return SyncMessage{}, false
	}

	return SyncMessage{
		Type:    frame.Type,
		TableID: tableID,
		Status:  TableStatus(*frame.Status),
	}, true
}

func coerceTableID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		// JSON numbers decode as float64; table ids are whole numbers
		// when numeric at all.
		return fmt.Sprintf("%d", int64(id))
	default:
		return ""
	}
}
