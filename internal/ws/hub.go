// Package ws implements the real-time broadcast channel. Every successful
// mutation is fanned out to all connected clients as a {type, payload} frame
// so other tabs and devices know to refetch.
//
// Delivery is best effort: there is no queueing, no replay for late joiners
// and no acknowledgement. Clients must treat a frame as "something changed,
// refetch the list" rather than as an authoritative delta. Note that the
// channel carries no per-user authorization: every open socket receives
// every user's events. That mirrors the deployed single-tenant setup and is
// deliberately kept contained in this package.
package ws

import (
	"sync"
)

// Event is a single broadcast frame. Payload is the created or updated
// record, or {"id": n} for deletions.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

const (
	EventCreated = "CREATED"
	EventUpdated = "UPDATED"
	EventDeleted = "DELETED"
)

// Conn is the subset of a websocket connection the hub needs. The concrete
// type is *websocket.Conn; tests substitute a recorder.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	conn Conn
	send chan Event
	done chan struct{}
}

// writeLoop is the sole writer for a connection, which also gives each
// client in-order delivery.
func (c *Client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case ev := <-c.send:
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}

// Hub is the connection registry. Connections register on upgrade and
// unregister on disconnect; Broadcast walks the current membership.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: map[*Client]struct{}{},
	}
}

func (h *Hub) Register(conn Conn) *Client {
	c := &Client{
		conn: conn,
		send: make(chan Event, 64),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()

	return c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	close(c.done)
	_ = c.conn.Close()
}

// Broadcast queues the event on every registered client. A client whose
// buffer is full is skipped; it will resync on its next list fetch.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
		}
	}
}
