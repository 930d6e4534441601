package ports

// EventPublisher es el puerto de emisión de eventos en tiempo real hacia los
// clientes conectados. La entrega es best-effort: sin cola durable, sin replay.
// Lo implementa el hub de WebSocket.
type EventPublisher interface {
	// BroadcastAll emite el evento a todos los sockets conectados.
	BroadcastAll(event string, payload interface{})
	// BroadcastToUser emite el evento solo a la sala user:<userID>.
	BroadcastToUser(userID, event string, payload interface{})
}

// Nombres de eventos emitidos por el servidor.
const (
	EventSaleUpdate   = "sale_update"
	EventGoalUpdate   = "goal_update"
	EventUserUpdate   = "user_update"
	EventNotification = "notification"
)
