package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Dashboard message types
const (
	MsgProgressUpdate  MessageType = "progress_update"
	MsgTestCompleted   MessageType = "test_completed"
	MsgSkillsEvaluated MessageType = "skills_evaluated"
	MsgError           MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections: admin dashboard watchers plus one
// connection per active test taker
type Hub struct {
	adminConns map[*Connection]bool
	userConns  map[string]*Connection // userID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID  string // Empty for admin connections
	IsAdmin bool
	Send    chan []byte
	Hub     *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ToAdmins bool
	ToUser   string
	Message  *Message
}

// NewHub creates a new WebSocket hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		adminConns: make(map[*Connection]bool),
		userConns:  make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsAdmin {
				h.adminConns[conn] = true
				log.Println("Admin connected to dashboard")
			} else {
				h.userConns[conn.UserID] = conn
				log.Printf("User %s connected", conn.UserID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsAdmin {
				if h.adminConns[conn] {
					delete(h.adminConns, conn)
					close(conn.Send)
					log.Println("Admin disconnected from dashboard")
				}
			} else {
				if existing, ok := h.userConns[conn.UserID]; ok && existing == conn {
					delete(h.userConns, conn.UserID)
					close(conn.Send)
					log.Printf("User %s disconnected", conn.UserID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToAdmins {
				for conn := range h.adminConns {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else if msg.ToUser != "" {
				if conn, ok := h.userConns[msg.ToUser]; ok {
					select {
					case conn.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAdmins sends a message to every dashboard watcher (implements
// service.Broadcaster)
func (h *Hub) BroadcastToAdmins(msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToAdmins: true,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToUser sends a message to a specific test taker (implements
// service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		ToUser: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
