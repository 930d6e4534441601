package ws

import (
	"sync"

	"github.com/Drko99-0/goodcall-crm/internal/application/ports"
	"github.com/rs/zerolog"
)

var _ ports.EventPublisher = (*Hub)(nil)

// Conn es el subconjunto de la conexión WebSocket que el hub necesita.
// Permite probar el hub sin sockets reales.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Envelope es el sobre que viaja por el socket hacia el cliente.
type Envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Stats estado instantáneo del hub, expuesto vía el evento get-stats.
type Stats struct {
	Clients int `json:"clients"`
	Rooms   int `json:"rooms"`
}

type client struct {
	conn  Conn
	rooms map[string]bool
	wmu   sync.Mutex
}

// write serializa las escrituras sobre la conexión: el protocolo WebSocket no
// admite WriteJSON concurrente sobre el mismo socket.
func (c *client) write(v interface{}) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub mantiene los sockets conectados y sus salas, y emite eventos hacia
// ellos. La entrega es best-effort: un error de escritura se registra y se
// ignora; no hay cola ni reintento.
type Hub struct {
	mu      sync.RWMutex
	clients map[Conn]*client
	rooms   map[string]map[Conn]bool
	log     zerolog.Logger
}

// NewHub crea un hub vacío.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[Conn]*client),
		rooms:   make(map[string]map[Conn]bool),
		log:     log,
	}
}

// Register incorpora una conexión al hub.
func (h *Hub) Register(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = &client{conn: conn, rooms: make(map[string]bool)}
}

// Unregister retira la conexión de todas sus salas y la cierra.
func (h *Hub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[conn]
	if !ok {
		return
	}
	for room := range c.rooms {
		h.leaveLocked(conn, room)
	}
	delete(h.clients, conn)
	conn.Close()
}

// JoinRoom suma la conexión a la sala. Registra la conexión si hiciera falta.
func (h *Hub) JoinRoom(conn Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[conn]
	if !ok {
		c = &client{conn: conn, rooms: make(map[string]bool)}
		h.clients[conn] = c
	}
	c.rooms[room] = true
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[Conn]bool)
	}
	h.rooms[room][conn] = true
}

// LeaveRoom saca la conexión de la sala.
func (h *Hub) LeaveRoom(conn Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		delete(c.rooms, room)
	}
	h.leaveLocked(conn, room)
}

func (h *Hub) leaveLocked(conn Conn, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, conn)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// Send escribe un evento directamente sobre una conexión, serializado con los
// broadcasts que pudieran estar escribiendo sobre ella.
func (h *Hub) Send(conn Conn, event string, payload interface{}) error {
	h.mu.RLock()
	c, ok := h.clients[conn]
	h.mu.RUnlock()
	env := Envelope{Event: event, Payload: payload}
	if !ok {
		return conn.WriteJSON(env)
	}
	return c.write(env)
}

// BroadcastAll emite el evento a todos los sockets conectados.
func (h *Hub) BroadcastAll(event string, payload interface{}) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	env := Envelope{Event: event, Payload: payload}
	for _, c := range targets {
		if err := c.write(env); err != nil {
			h.log.Warn().Err(err).Str("event", event).Msg("fallo al escribir en socket")
		}
	}
}

// BroadcastToUser emite el evento a la sala user:<userID>.
func (h *Hub) BroadcastToUser(userID, event string, payload interface{}) {
	h.BroadcastToRoom(UserRoom(userID), event, payload)
}

// BroadcastToRoom emite el evento a todos los miembros de la sala.
func (h *Hub) BroadcastToRoom(room, event string, payload interface{}) {
	h.mu.RLock()
	var targets []*client
	for conn := range h.rooms[room] {
		if c, ok := h.clients[conn]; ok {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	env := Envelope{Event: event, Payload: payload}
	for _, c := range targets {
		if err := c.write(env); err != nil {
			h.log.Warn().Err(err).Str("event", event).Str("room", room).Msg("fallo al escribir en socket")
		}
	}
}

// Stats devuelve cantidades actuales de conexiones y salas.
func (h *Hub) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Stats{Clients: len(h.clients), Rooms: len(h.rooms)}
}

// UserRoom nombre de la sala personal de un usuario.
func UserRoom(userID string) string {
	return "user:" + userID
}
