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

// StreetHandler handles street reference requests
type StreetHandler struct {
	service service.StreetService
}

// NewStreetHandler creates a new StreetHandler
func NewStreetHandler(s service.StreetService) *StreetHandler {
	return &StreetHandler{service: s}
}

func (h *StreetHandler) ListStreets(c *gin.Context) {
	streets, err := h.service.ListStreets(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list streets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve streets"})
		return
	}
	if streets == nil {
		streets = []model.Street{}
	}
	c.JSON(http.StatusOK, streets)
}

func (h *StreetHandler) CreateStreet(c *gin.Context) {
	var req model.CreateStreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Google Maps name are required"})
		return
	}

	street, err := h.service.CreateStreet(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create street")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create street"})
		return
	}
	c.JSON(http.StatusCreated, street)
}

func (h *StreetHandler) ReorderStreets(c *gin.Context) {
	var req model.ReorderStreetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order array required"})
		return
	}

	if err := h.service.ReorderStreets(c.Request.Context(), req); err != nil {
		log.Error().Err(err).Msg("failed to reorder streets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update street order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

func (h *StreetHandler) DeleteStreet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid street ID"})
		return
	}

	if err := h.service.DeleteStreet(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStreetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Int64("street_id", id).Msg("failed to delete street")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete street"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Street deleted"})
}

// RegisterStreetRoutes registers street routes; reading is open to all
// authenticated staff, mutations are admin-only.
func (h *StreetHandler) RegisterStreetRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	streets := rg.Group("/streets")
	streets.Use(authMW)
	{
		streets.GET("", h.ListStreets)
	}

	adminStreets := rg.Group("/streets")
	adminStreets.Use(authMW, adminMW)
	{
		adminStreets.POST("", h.CreateStreet)
		adminStreets.PATCH("/order", h.ReorderStreets)
		adminStreets.DELETE("/:id", h.DeleteStreet)
	}
}
