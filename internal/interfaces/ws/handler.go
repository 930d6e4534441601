package ws

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// clientMessage mensaje entrante desde el navegador.
type clientMessage struct {
	Event string `json:"event"`
	Room  string `json:"room,omitempty"`
}

// Handler expone el endpoint /ws y traduce el protocolo de mensajes del
// cliente (join-room, leave-room, get-stats) a operaciones sobre el hub.
type Handler struct {
	hub *Hub
	log zerolog.Logger
}

// NewHandler crea el handler de WebSocket.
func NewHandler(hub *Hub, log zerolog.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

// Upgrade middleware que rechaza peticiones que no sean de upgrade WebSocket.
func (h *Handler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve devuelve el handler de conexión. Cada socket se une automáticamente a
// su sala personal user:<id> cuando llega con ?userId=.
func (h *Handler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID := conn.Query("userId")

		h.hub.Register(conn)
		defer h.hub.Unregister(conn)

		if userID != "" {
			h.hub.JoinRoom(conn, UserRoom(userID))
		}
		h.log.Debug().Str("user_id", userID).Msg("socket conectado")

		if err := h.hub.Send(conn, "connected", nil); err != nil {
			return
		}

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				h.log.Debug().Str("user_id", userID).Msg("socket desconectado")
				return
			}
			var msg clientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}
			switch msg.Event {
			case "join-room":
				if msg.Room != "" {
					h.hub.JoinRoom(conn, msg.Room)
				}
			case "leave-room":
				if msg.Room != "" {
					h.hub.LeaveRoom(conn, msg.Room)
				}
			case "get-stats":
				h.hub.Send(conn, "stats", h.hub.Stats())
			}
		}
	})
}
