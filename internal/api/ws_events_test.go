package api

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"goalsmith/internal/progress"
)

func dialEvents(t *testing.T, srv *httptest.Server, goal string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/goals/" + url.PathEscape(goal) + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	return conn
}

func TestEventHub_BroadcastReachesClient(t *testing.T) {
	hub := NewEventHub()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/goals/:title/events", EventsHandler(hub))

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialEvents(t, srv, "Test Goal")
	defer conn.Close()

	// Registration races the dial response; give the handler a beat.
	time.Sleep(50 * time.Millisecond)

	hub.AchievementUnlocked("Test Goal", progress.Achievement{
		Tracker:   "Miles",
		Threshold: 25,
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Type != "achievement" || ev.Goal != "Test Goal" {
		t.Errorf("event = %+v", ev)
	}
}

func TestEventHub_FiltersOtherGoals(t *testing.T) {
	hub := NewEventHub()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/goals/:title/events", EventsHandler(hub))

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialEvents(t, srv, "Mine")
	defer conn.Close()
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(Event{Type: "milestone", Goal: "Someone Else's"})
	hub.Broadcast(Event{Type: "milestone", Goal: "Mine"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Goal != "Mine" {
		t.Errorf("received event for %q, want only own goal", ev.Goal)
	}
}

func TestEventHub_DeadClientRemoved(t *testing.T) {
	hub := NewEventHub()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/goals/:title/events", EventsHandler(hub))

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn := dialEvents(t, srv, "G")
	time.Sleep(50 * time.Millisecond)
	conn.Close()
	time.Sleep(50 * time.Millisecond)

	// Broadcast to the closed connection must not panic and must
	// prune it.
	hub.Broadcast(Event{Type: "milestone", Goal: "G"})
	hub.Broadcast(Event{Type: "milestone", Goal: "G"})

	hub.mu.Lock()
	n := len(hub.conns)
	hub.mu.Unlock()
	if n != 0 {
		t.Errorf("connections = %d, want 0 after pruning", n)
	}
}
