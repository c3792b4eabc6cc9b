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

// DeliveryHandler handles the per-user delivery ledger requests
type DeliveryHandler struct {
	service service.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(s service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{service: s}
}

func (h *DeliveryHandler) deliveryError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrDeliveryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func (h *DeliveryHandler) CreateDelivery(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	delivery, err := h.service.CreateDelivery(c.Request.Context(), userID, req)
	if err != nil {
		h.deliveryError(c, err, "Failed to create delivery")
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

func (h *DeliveryHandler) GetMyDeliveries(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	deliveries, err := h.service.GetUserDeliveries(c.Request.Context(), userID)
	if err != nil {
		h.deliveryError(c, err, "Failed to retrieve deliveries")
		return
	}
	if deliveries == nil {
		deliveries = []model.Delivery{}
	}
	c.JSON(http.StatusOK, deliveries)
}

func (h *DeliveryHandler) UpdateDelivery(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	var req model.DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	delivery, err := h.service.UpdateDelivery(c.Request.Context(), id, userID, req)
	if err != nil {
		h.deliveryError(c, err, "Failed to update delivery")
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *DeliveryHandler) DeleteDelivery(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	if err := h.service.DeleteDelivery(c.Request.Context(), id, userID); err != nil {
		h.deliveryError(c, err, "Failed to delete delivery")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DeliveryHandler) GetEarnings(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.service.Earnings(c.Request.Context(), userID)
	if err != nil {
		h.deliveryError(c, err, "Failed to compute earnings")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RegisterDeliveryRoutes registers the ledger routes; everything is
// scoped to the authenticated identity.
func (h *DeliveryHandler) RegisterDeliveryRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	deliveries := rg.Group("/deliveries")
	deliveries.Use(authMW)
	{
		deliveries.POST("", h.CreateDelivery)
		deliveries.GET("", h.GetMyDeliveries)
		deliveries.GET("/earnings", h.GetEarnings)
		deliveries.PUT("/:id", h.UpdateDelivery)
		deliveries.DELETE("/:id", h.DeleteDelivery)
	}
}
