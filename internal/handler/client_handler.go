package handler

import (
	"errors"
	"net/http"
	"strconv"

	"delivery_tracker/internal/model"
	"delivery_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ClientHandler handles client record requests
type ClientHandler struct {
	service service.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(s service.ClientService) *ClientHandler {
	return &ClientHandler{service: s}
}

func clientIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return 0, false
	}
	return id, true
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// ListClients returns the render-ready client list: optionally scoped
// to the status path segment, narrowed by the search/address query
// params and sorted by the street reference order.
func (h *ClientHandler) ListClients(c *gin.Context) {
	var filters model.ClientFilters
	if status := c.Param("status"); status != "" {
		filters.Status = &status
	}
	filters.Search = c.Query("search")
	filters.Address = c.Query("address")

	clients, err := h.service.ListClients(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Msg("failed to list clients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve clients"})
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.service.GetClientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Int64("client_id", id).Msg("failed to get client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Int64("client_id", id).Msg("failed to update client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) UpdateStatus(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrNoteRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error().Err(err).Int64("client_id", id).Msg("failed to update client status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client status"})
		}
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Int64("client_id", id).Msg("failed to delete client")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterClientRoutes registers client routes; every route requires
// authentication.
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, staffMW gin.HandlerFunc) {
	clients := rg.Group("/clients")
	clients.Use(authMW, staffMW)
	{
		clients.GET("", h.ListClients)
		clients.GET("/status/:status", h.ListClients)
		clients.POST("", h.CreateClient)
		clients.GET("/:id", h.GetClientByID)
		clients.PATCH("/:id", h.UpdateClient)
		clients.PATCH("/:id/status", h.UpdateStatus)
		clients.DELETE("/:id", h.DeleteClient)
	}
}
