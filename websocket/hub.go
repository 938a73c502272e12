package websocket

import (
	"sync"

	"github.com/admindocentes/backend/store"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client is one connected event consumer.
type Client struct {
	ID   string
	Conn *websocket.Conn
}

// Hub fans store change events out to connected clients. A client that
// cannot be written to is dropped.
type Hub struct {
	store      *store.Store
	log        *logrus.Logger
	register   chan *Client
	unregister chan *Client

	mu      sync.RWMutex
	clients map[string]*websocket.Conn
}

func NewHub(st *store.Store, log *logrus.Logger) *Hub {
	return &Hub{
		store:      st,
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*websocket.Conn),
	}
}

// Run consumes store events and the register/unregister queues until the
// store subscription is cancelled.
func (h *Hub) Run() {
	events, cancel := h.store.Subscribe()
	defer cancel()

	for {
		select {
		case client := <-h.register:
			h.log.WithField("client", client.ID).Debug("event client registered")
			h.mu.Lock()
			h.clients[client.ID] = client.Conn
			h.mu.Unlock()
		case client := <-h.unregister:
			h.log.WithField("client", client.ID).Debug("event client unregistered")
			h.mu.Lock()
			if conn, ok := h.clients[client.ID]; ok && conn == client.Conn {
				delete(h.clients, client.ID)
			}
			h.mu.Unlock()
		case event, ok := <-events:
			if !ok {
				return
			}
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event store.Event) {
	var broken []string
	h.mu.RLock()
	for id, conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.log.WithError(err).WithField("client", id).Warn("dropping event client")
			conn.Close()
			broken = append(broken, id)
		}
	}
	h.mu.RUnlock()

	if len(broken) > 0 {
		h.mu.Lock()
		for _, id := range broken {
			delete(h.clients, id)
		}
		h.mu.Unlock()
	}
}

// Handler upgrades the connection and keeps it registered until the peer
// goes away. Incoming frames are read and discarded; the feed is one-way.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{ID: uuid.NewString(), Conn: conn}
		h.register <- client
		defer func() {
			h.unregister <- client
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
