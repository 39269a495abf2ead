package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// recipient keys: "user:<id>" or "vendor:<id>"
func userKey(id uint) string   { return fmt.Sprintf("user:%d", id) }
func vendorKey(id uint) string { return fmt.Sprintf("vendor:%d", id) }

// NotificationHub fans stored notifications out to connected recipients.
type NotificationHub struct {
	clients    map[string]map[*websocket.Conn]bool // recipient key -> set of conns
	broadcast  chan *entity.Notification
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn *websocket.Conn
	Key  string
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Notification),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Publish hands a notification to the hub without blocking the caller's
// request; delivery is best-effort.
func (h *NotificationHub) Publish(n *entity.Notification) {
	go func() { h.broadcast <- n }()
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Key] == nil {
				h.clients[sub.Key] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Key][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Key][sub.Conn]; ok {
				delete(h.clients[sub.Key], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			var key string
			switch {
			case n.UserID != nil:
				key = userKey(*n.UserID)
			case n.VendorID != nil:
				key = vendorKey(*n.VendorID)
			default:
				continue
			}
			h.mu.Lock()
			for conn := range h.clients[key] {
				if err := conn.WriteJSON(n); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[key], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications (the caller's own stream)
func (h *NotificationHub) HandleUserStream(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
		return
	}
	h.serve(c, userKey(userID))
}

// WS route: /ws/vendors/:vendorId/notifications, vendor-admin gated
// upstream.
func (h *NotificationHub) HandleVendorStream(c *gin.Context) {
	vendorID, _ := c.Get("vendorId")
	id, ok := vendorID.(uint)
	if !ok || id == 0 {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "no access"})
		return
	}
	h.serve(c, vendorKey(id))
}

func (h *NotificationHub) serve(c *gin.Context, key string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, Key: key}
	h.register <- sub

	go h.drain(sub)
}

// drain discards client frames; its only job is noticing the close.
func (h *NotificationHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
