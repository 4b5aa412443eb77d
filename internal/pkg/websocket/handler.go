package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP connections into change feed clients.
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Establish a WebSocket connection for store change events
// @Description Upgrades the HTTP connection to a WebSocket stream of collection change events
// @Tags websocket
// @Produce json
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} gin.H "Unauthorized: token missing or invalid"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade websocket connection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not establish websocket connection"})
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 64),
		logger: h.logger,
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()
}
