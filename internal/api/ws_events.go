package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"goalsmith/internal/progress"
	"goalsmith/internal/spec"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is one user-visible progress notification pushed over the
// events socket.
type Event struct {
	Type      string      `json:"type"`
	Goal      string      `json:"goal"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// safeWSConn serializes writes; gorilla connections allow only one
// concurrent writer.
type safeWSConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *safeWSConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// EventHub fans progress events out to connected sockets. It
// implements progress.Notifier so engines can emit directly into it.
// Each connection subscribes to a single goal; an empty filter
// receives everything.
type EventHub struct {
	mu    sync.Mutex
	conns map[*safeWSConn]string
}

func NewEventHub() *EventHub {
	return &EventHub{conns: make(map[*safeWSConn]string)}
}

func (h *EventHub) add(c *safeWSConn, goal string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = goal
}

func (h *EventHub) remove(c *safeWSConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Broadcast delivers the event to every client subscribed to its
// goal. Dead connections are dropped on write failure.
func (h *EventHub) Broadcast(ev Event) {
	ev.Timestamp = time.Now()

	h.mu.Lock()
	conns := make([]*safeWSConn, 0, len(h.conns))
	for c, goal := range h.conns {
		if goal == "" || goal == ev.Goal {
			conns = append(conns, c)
		}
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			log.Printf("[Events] Dropping client: %v", err)
			h.remove(c)
			c.conn.Close()
		}
	}
}

func (h *EventHub) AchievementUnlocked(goalTitle string, a progress.Achievement) {
	h.Broadcast(Event{Type: "achievement", Goal: goalTitle, Payload: a})
}

func (h *EventHub) MilestoneCompleted(goalTitle string, m spec.Milestone) {
	h.Broadcast(Event{Type: "milestone", Goal: goalTitle, Payload: m})
}

// EventsHandler upgrades the connection, subscribes it to the goal
// named in the path, and keeps it registered until the client goes
// away. Inbound messages are discarded.
func EventsHandler(hub *EventHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawConn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[Events] Upgrade failed: %v", err)
			return
		}
		conn := &safeWSConn{conn: rawConn}
		hub.add(conn, c.Param("title"))
		defer func() {
			hub.remove(conn)
			rawConn.Close()
		}()

		for {
			if _, _, err := rawConn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
