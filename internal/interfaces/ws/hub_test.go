package ws

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn registra todo lo que el hub le escribe.
type fakeConn struct {
	written []Envelope
	closed  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.written = append(c.written, v.(Envelope))
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) events() []string {
	out := make([]string, 0, len(c.written))
	for _, env := range c.written {
		out = append(out, env.Event)
	}
	return out
}

func testHub() *Hub {
	return NewHub(zerolog.Nop())
}

func TestHub_BroadcastAll_LlegaATodos(t *testing.T) {
	hub := testHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(a)
	hub.Register(b)

	hub.BroadcastAll("sale_update", map[string]string{"id": "s1"})

	assert.Equal(t, []string{"sale_update"}, a.events())
	assert.Equal(t, []string{"sale_update"}, b.events())
}

// Un cliente en user:42 recibe los broadcasts globales y los suyos, pero no los
// dirigidos a user:7.
func TestHub_BroadcastToUser_SoloSuSala(t *testing.T) {
	hub := testHub()
	user42, user7 := &fakeConn{}, &fakeConn{}
	hub.Register(user42)
	hub.Register(user7)
	hub.JoinRoom(user42, UserRoom("42"))
	hub.JoinRoom(user7, UserRoom("7"))

	hub.BroadcastAll("goal_update", nil)
	hub.BroadcastToUser("42", "notification", map[string]string{"title": "hola"})
	hub.BroadcastToUser("7", "notification", nil)

	assert.Equal(t, []string{"goal_update", "notification"}, user42.events())
	assert.Equal(t, []string{"goal_update", "notification"}, user7.events())

	// La notificación de user42 lleva su payload; la de user7 no le llegó a user42.
	require.Len(t, user42.written, 2)
	payload, ok := user42.written[1].Payload.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "hola", payload["title"])
}

func TestHub_LeaveRoom_CortaLaEntrega(t *testing.T) {
	hub := testHub()
	conn := &fakeConn{}
	hub.Register(conn)
	hub.JoinRoom(conn, UserRoom("42"))

	hub.BroadcastToUser("42", "notification", nil)
	hub.LeaveRoom(conn, UserRoom("42"))
	hub.BroadcastToUser("42", "notification", nil)

	assert.Equal(t, []string{"notification"}, conn.events())
}

func TestHub_Unregister_LimpiaRegistroYSalas(t *testing.T) {
	hub := testHub()
	conn := &fakeConn{}
	hub.Register(conn)
	hub.JoinRoom(conn, UserRoom("42"))
	hub.JoinRoom(conn, "equipo:norte")

	require.Equal(t, Stats{Clients: 1, Rooms: 2}, hub.Stats())

	hub.Unregister(conn)

	assert.Equal(t, Stats{Clients: 0, Rooms: 0}, hub.Stats())
	assert.True(t, conn.closed, "la conexión debe cerrarse al salir del hub")

	// Nada más que entregar después de salir.
	hub.BroadcastAll("user_update", nil)
	hub.BroadcastToUser("42", "notification", nil)
	assert.Empty(t, conn.events())
}

func TestHub_UnregisterDesconocido_NoHaceNada(t *testing.T) {
	hub := testHub()
	conn := &fakeConn{}
	hub.Unregister(conn)
	assert.False(t, conn.closed)
	assert.Equal(t, Stats{}, hub.Stats())
}

// raceConn detecta invocaciones solapadas de WriteJSON sobre la misma conexión.
type raceConn struct {
	inFlight int32
	overlaps int32
	writes   int32
}

func (c *raceConn) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&c.inFlight, 1) > 1 {
		atomic.AddInt32(&c.overlaps, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.inFlight, -1)
	atomic.AddInt32(&c.writes, 1)
	return nil
}

func (c *raceConn) Close() error { return nil }

// Los broadcasts desde varios publicadores y los envíos directos comparten la
// misma conexión; ninguna escritura puede solapar con otra.
func TestHub_EscriturasSerializadasPorConexion(t *testing.T) {
	hub := testHub()
	conn := &raceConn{}
	hub.Register(conn)
	hub.JoinRoom(conn, UserRoom("42"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastAll("sale_update", nil)
			hub.BroadcastToUser("42", "notification", nil)
			hub.Send(conn, "stats", hub.Stats())
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 0, atomic.LoadInt32(&conn.overlaps),
		"el hub no debe invocar WriteJSON concurrentemente sobre la misma conexión")
	assert.EqualValues(t, 24, atomic.LoadInt32(&conn.writes))
}

func TestHub_VariosClientesEnLaMismaSala(t *testing.T) {
	hub := testHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(a)
	hub.Register(b)
	hub.JoinRoom(a, UserRoom("42"))
	hub.JoinRoom(b, UserRoom("42"))

	hub.BroadcastToUser("42", "notification", nil)

	assert.Equal(t, []string{"notification"}, a.events())
	assert.Equal(t, []string{"notification"}, b.events())
}
