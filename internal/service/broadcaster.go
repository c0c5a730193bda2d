package service

// Broadcaster pushes live events to connected WebSocket clients. Implemented
// by the ws hub; services treat it as optional and never block on it.
type Broadcaster interface {
	BroadcastToAdmins(event string, payload interface{})
	BroadcastToUser(userID string, event string, payload interface{})
}
