package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = pongWait * 9 / 10
	sendBacklog = 16
)

// Event is one message of the change feed.
type Event struct {
	Kind    string `json:"kind"`
	Version uint64 `json:"version"`
	Theme   string `json:"theme,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Event kinds.
const (
	EventStyle = "style"
	EventDeck  = "deck"
)

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub fans change events out to every connected page.
type hub struct {
	upgrader websocket.Upgrader
	log      *logger.Logger

	mu      sync.Mutex
	clients map[string]*client
	closed  bool
}

func newHub(log *logger.Logger) *hub {
	return &hub{
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		log:      log,
		clients:  map[string]*client{},
	}
}

// Broadcast queues ev for every client without blocking. A client whose
// backlog is full is dropped; its page reconnects on reload.
func (h *hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error(err, "encode change event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.log.Warnw("dropping slow websocket client", "client_id", id)
			delete(h.clients, id)
			close(c.send)
		}
	}
}

// Len reports connected clients.
func (h *hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *hub) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "request_id", RequestID(r.Context()), "error", err.Error())
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBacklog)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c.id] = c
	h.mu.Unlock()
	h.log.Debugw("websocket client connected", "client_id", c.id, "request_id", RequestID(r.Context()))

	go h.writePump(c)
	h.readPump(c)
}

// readPump only watches for the close; the page never sends anything.
func (h *hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	h.log.Debugw("websocket client disconnected", "client_id", c.id)
}

// Close disconnects every client and refuses new ones.
func (h *hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}
