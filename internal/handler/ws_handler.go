package handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/alexdelx20/WeddingDream/internal/ws"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Upgrade gates the /ws route: anything that is not a websocket upgrade
// gets a 426 before Fiber hands the connection to Serve.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve registers the connection with the hub and then just drains inbound
// frames. Clients never send application data; reading is only needed so
// close and ping frames are processed and disconnects are noticed.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := h.hub.Register(conn)
		defer h.hub.Unregister(client)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
