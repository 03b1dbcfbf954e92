package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSyncMessage(t *testing.T) {
	t.Run("table_updated", func(t *testing.T) {
		msg, ok := ParseSyncMessage([]byte(`{"type":"table_updated","tableId":"B1","status":3}`))
		require.True(t, ok)
		assert.Equal(t, SyncTableUpdated, msg.Type)
		assert.Equal(t, "B1", msg.TableID)
		assert.Equal(t, StatusOvertime, msg.Status)
	})

	t.Run("order_created with tableNumber", func(t *testing.T) {
		msg, ok := ParseSyncMessage([]byte(`{"type":"order_created","tableNumber":"A3","status":1}`))
		require.True(t, ok)
		assert.Equal(t, "A3", msg.TableID)
		assert.Equal(t, StatusOccupied, msg.Status)
	})

	t.Run("tableId wins over tableNumber", func(t *testing.T) {
		msg, ok := ParseSyncMessage([]byte(`{"type":"table_updated","tableId":"B1","tableNumber":"B2","status":1}`))
		require.True(t, ok)
		assert.Equal(t, "B1", msg.TableID)
	})

	t.Run("numeric table id becomes a string key", func(t *testing.T) {
		msg, ok := ParseSyncMessage([]byte(`{"type":"table_updated","tableId":12,"status":1}`))
		require.True(t, ok)
		assert.Equal(t, "12", msg.TableID)
	})

	t.Run("rejected frames", func(t *testing.T) {
		tests := []struct {
			name string
			data string
		}{
			{"unknown type", `{"type":"unknown","tableId":"B1","status":9}`},
			{"missing type", `{"tableId":"B1","status":1}`},
			{"missing table id", `{"type":"table_updated","status":1}`},
			{"missing status", `{"type":"table_updated","tableId":"B1"}`},
			{"empty table id", `{"type":"table_updated","tableId":"","status":1}`},
			{"not json", `this is not json`},
			{"empty", ``},
			{"json array", `[1,2,3]`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, ok := ParseSyncMessage([]byte(tt.data))
				assert.False(t, ok)
			})
		}
	})
}
