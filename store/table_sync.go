package store

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/naomichiang/POS-system-Cursor/entity"
)

// TableSyncStore keeps an eventually-consistent view of every table's
// status. It is written from two sides through the same path: local
// optimistic updates after a successful table-open, and frames pushed by
// the backend over a websocket. Last write wins; the frames carry no
// sequence numbers, so out-of-order backend updates cannot be detected.
// That limitation is accepted, not a bug to patch here.
type TableSyncStore struct {
	mu       sync.Mutex
	statuses map[string]entity.TableStatus

	wsURL      string
	terminalID string
	conn       *websocket.Conn
	connected  bool
}

// NewTableSyncStore builds a store. An empty wsURL means the push channel
// is disabled: ConnectWS becomes a silent no-op and the terminal runs on
// local optimistic updates only.
func NewTableSyncStore(wsURL, terminalID string) *TableSyncStore {
	return &TableSyncStore{
		statuses:   make(map[string]entity.TableStatus),
		wsURL:      wsURL,
		terminalID: terminalID,
	}
}

// SetTableStatus writes one entry. An empty tableId is a silent no-op.
// This is the single write path for both local confirmations and pushed
// frames, so both origins get identical handling.
func (s *TableSyncStore) SetTableStatus(tableID string, status entity.TableStatus) {
	if tableID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[tableID] = status
}

// SetTableStatusBatch merges multiple entries at once (bulk reconciliation
// after fetching a snapshot). A nil map is a no-op.
func (s *TableSyncStore) SetTableStatusBatch(m map[string]entity.TableStatus) {
	if m == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, status := range m {
		if id == "" {
			continue
		}
		s.statuses[id] = status
	}
}

// GetTableStatus returns the mapped status, defaulting to available for
// tables this client has never seen. The backend is the source of truth;
// an unopened table genuinely is available.
func (s *TableSyncStore) GetTableStatus(tableID string) entity.TableStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.statuses[tableID]; ok {
		return status
	}
	return entity.StatusAvailable
}

// Snapshot returns a copy of the whole status map.
func (s *TableSyncStore) Snapshot() map[string]entity.TableStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]entity.TableStatus, len(s.statuses))
	for id, status := range s.statuses {
		out[id] = status
	}
	return out
}

// Connected reports whether the push channel is currently up. It checks
// the live connection handle, not a free-standing flag, so a stale handle
// can't masquerade as connected.
func (s *TableSyncStore) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil && s.connected
}

// ConnectWS opens the push channel. No-op when already connected or when
// no endpoint is configured. A failed dial is logged as a warning and the
// store stays disconnected; there is no automatic retry — the operator (or
// the UI) calls ConnectWS again, which is always safe.
func (s *TableSyncStore) ConnectWS() {
	s.mu.Lock()
	if s.conn != nil && s.connected {
		s.mu.Unlock()
		return
	}
	url := s.wsURL
	s.mu.Unlock()

	if url == "" {
		return
	}

	header := http.Header{}
	if s.terminalID != "" {
		header.Set("X-Terminal-ID", s.terminalID)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		log.Printf("tablesync: websocket dial failed: %v", err)
		return
	}

	s.mu.Lock()
	if s.conn != nil && s.connected {
		// lost the race against a concurrent ConnectWS
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.conn = conn
	s.connected = true
	s.mu.Unlock()

	go s.readPump(conn)
}

// readPump consumes frames until the connection dies, then clears the
// handle so the next ConnectWS isn't fooled by a dead one. Read errors are
// deliberately not logged; with no backend push endpoint around (local
// development) they'd just be noise.
func (s *TableSyncStore) readPump(conn *websocket.Conn) {
	defer func() {
		conn.Close()
		s.mu.Lock()
		if s.conn == conn {
			s.conn = nil
			s.connected = false
		}
		s.mu.Unlock()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.HandleMessage(data)
	}
}

// HandleMessage applies one push-channel frame. Malformed frames and
// unrecognized shapes are dropped without side effect; a single corrupt
// frame must never take the client down or desync the frames after it.
func (s *TableSyncStore) HandleMessage(data []byte) {
	msg, ok := entity.ParseSyncMessage(data)
	if !ok {
		return
	}
	s.SetTableStatus(msg.TableID, msg.Status)
}

// DisconnectWS closes the push channel. Safe to call repeatedly and when
// nothing is connected.
func (s *TableSyncStore) DisconnectWS() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.connected = false
}
