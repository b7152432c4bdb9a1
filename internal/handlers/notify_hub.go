package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"stagecraft-crm/internal/sourcing"
	"stagecraft-crm/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GlobalHub is the single notification hub for the application.
var GlobalHub = NewHub()

// Notification is the envelope pushed to connected clients when pipeline
// activity happens elsewhere in the app.
type Notification struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

type Hub struct {
	clients    map[uint]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uint]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.userID] = client
			h.mu.Unlock()
			slog.Info("Notification client registered", "userID", client.userID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
			}
			h.mu.Unlock()
			slog.Info("Notification client unregistered", "userID", client.userID)

		case data := <-h.broadcast:
			h.mu.Lock()
			for userID, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Slow consumer, drop the connection.
					close(client.send)
					delete(h.clients, userID)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) publish(eventType string, payload interface{}) {
	data, err := json.Marshal(Notification{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		slog.Error("Failed to marshal notification", "type", eventType, "error", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		// Nobody is running the hub (e.g. in tests); do not block the caller.
	}
}

// BroadcastVendorStatus announces a pipeline status change.
func (h *Hub) BroadcastVendorStatus(vendor *models.SourcedVendor, previous string) {
	h.publish("vendor_status_changed", gin.H{
		"vendorId":       vendor.ID,
		"eventId":        vendor.EventID,
		"name":           vendor.Name,
		"previousStatus": previous,
		"status":         vendor.Status,
		"statusLabel":    sourcing.StatusLabel(vendor.Status),
	})
}

// BroadcastResearchComplete announces that an AI research run finished.
func (h *Hub) BroadcastResearchComplete(result *models.ResearchResult, candidates int) {
	h.publish("research_complete", gin.H{
		"researchResultId": result.ID,
		"eventId":          result.EventID,
		"query":            result.Query,
		"candidates":       candidates,
	})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		// Clients only listen; reads exist to detect disconnects.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// NotificationsWSHandler upgrades the connection and subscribes the
// authenticated user to pipeline notifications.
func NotificationsWSHandler(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}

	client := &Client{hub: GlobalHub, conn: conn, send: make(chan []byte, 16), userID: userID}
	GlobalHub.register <- client

	go client.writePump()
	go client.readPump()
}
