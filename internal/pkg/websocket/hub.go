package websocket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nasibcs/uniadmin/internal/events"
)

// Hub maintains the set of connected dashboard clients and relays store
// change events to them. It is the cross-tab channel of the change
// notification layer: every open admin view gets told when a collection
// changed so it can re-read counts and lists.
type Hub struct {
	// Connected clients
	clients map[*Client]bool

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Source of store change events
	bus *events.Bus

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(bus *events.Bus, logger zerolog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		bus:        bus,
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and relaying change
// events until the subscription is cancelled.
func (h *Hub) Run() {
	changes, cancel := h.bus.Subscribe(64)
	defer cancel()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event, ok := <-changes:
			if !ok {
				return
			}
			h.broadcastEvent(event)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("addr", client.conn.RemoteAddr().String()).
		Int("clients", len(h.clients)).
		Msg("Change feed client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Int("clients", len(h.clients)).
			Msg("Change feed client unregistered")
	}
}

// broadcastEvent sends a change event to all connected clients.
// Delivery is best effort: a client that cannot keep up is dropped.
func (h *Hub) broadcastEvent(event events.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal change event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			delete(h.clients, client)
			close(client.send)
			h.logger.Warn().
				Str("addr", client.conn.RemoteAddr().String()).
				Msg("Dropped slow change feed client")
		}
	}
}
