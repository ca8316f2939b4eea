package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is the payload broadcast to dashboard clients when a task changes.
type Event struct {
	Type    string `json:"type"`
	TaskID  uint   `json:"taskId"`
	SlackID string `json:"slackId"`
	Version int    `json:"version"`
}

// Event types emitted by the lifecycle handlers.
const (
	EventTaskCreated       = "task_created"
	EventTaskStatusChanged = "task_status_changed"
	EventTaskDeleted       = "task_deleted"
	EventCommentAdded      = "comment_added"
)

// Hub maintains active connections keyed by Slack ID and broadcasts task
// events to them.
type Hub struct {
	mu               sync.RWMutex
	slackIDToClients map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			slackIDToClients: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a Slack ID.
func (h *Hub) Register(slackID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.slackIDToClients[slackID]; !ok {
		h.slackIDToClients[slackID] = make(map[Client]struct{})
	}
	h.slackIDToClients[slackID][client] = struct{}{}
}

// Unregister removes a client; if the user has no more clients, cleans up.
func (h *Hub) Unregister(slackID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.slackIDToClients[slackID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.slackIDToClients, slackID)
		}
	}
}

// Broadcast sends a message to all clients of a Slack ID.
func (h *Hub) Broadcast(slackID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := h.slackIDToClients[slackID]
	for c := range clients {
		// a failed write is cleaned up by the ws handler on its side
		_ = c.Send(message)
	}
}

// BroadcastEvent marshals and broadcasts an event to every listed Slack ID.
// Duplicate ids (creator == assignee) are sent once.
func (h *Hub) BroadcastEvent(evt Event, slackIDs ...string) {
	bytes, err := json.Marshal(evt)
	if err != nil {
		return
	}
	seen := make(map[string]struct{}, len(slackIDs))
	for _, id := range slackIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		h.Broadcast(id, bytes)
	}
}
