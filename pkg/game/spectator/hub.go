package spectator

import (
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"mazearena/pkg/game/state"
)

// sendBuffer is how many frames a client may fall behind before it is dropped
const sendBuffer = 16

type frame struct {
	kind int
	data []byte
}

type client struct {
	conn  *websocket.Conn
	codec string
	send  chan frame
}

func newClient(conn *websocket.Conn, codec string) *client {
	return &client{conn: conn, codec: codec, send: make(chan frame, sendBuffer)}
}

// Hub fans game events out to connected spectators. It implements
// state.Observer and never blocks the game: a client whose buffer is full is
// disconnected.
type Hub struct {
	mu      sync.Mutex
	clients mapset.Set[*client]
	log     log.FieldLogger
}

// NewHub creates an empty hub
func NewHub(logger log.FieldLogger) *Hub {
	return &Hub{clients: mapset.New[*client](), log: logger}
}

// register adds c and queues initial as its first frame
func (h *Hub) register(c *client, initial frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.send <- initial
	h.clients.Put(c)
	h.log.WithField("clients", h.clients.Size()).Debug("spectator joined")
}

// unregister removes c and closes its queue. Safe to call more than once.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(c)
}

func (h *Hub) drop(c *client) {
	if !h.clients.Has(c) {
		return
	}
	h.clients.Remove(c)
	close(c.send)
	h.log.WithField("clients", h.clients.Size()).Debug("spectator left")
}

// Len returns the number of connected spectators
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients.Size()
}

// StateChanged implements state.Observer
func (h *Hub) StateChanged(ev state.Event) {
	h.Broadcast(ev.Snapshot)
}

// Broadcast sends s to every client in the codec it asked for
func (h *Hub) Broadcast(s state.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	encoded := make(map[string]frame, 2)
	var slow []*client
	h.clients.Each(func(c *client) {
		f, ok := encoded[c.codec]
		if !ok {
			data, kind, err := Encode(s, c.codec)
			if err != nil {
				h.log.WithError(err).WithField("codec", c.codec).Error("failed to encode snapshot")
				return
			}
			f = frame{kind: kind, data: data}
			encoded[c.codec] = f
		}
		select {
		case c.send <- f:
		default:
			slow = append(slow, c)
		}
	})
	for _, c := range slow {
		h.log.Warn("dropping slow spectator")
		h.drop(c)
	}
}

// writePump copies queued frames to the connection until the queue closes
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for f := range c.send {
		if err := c.conn.WriteMessage(f.kind, f.data); err != nil {
			h.unregister(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards client messages and unregisters on disconnect
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
