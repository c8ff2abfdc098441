package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook/internal/domain"
	"roombook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms", h.CreateRoom)
	rg.PUT("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeleteRoom)
	rg.POST("/rooms/seed", h.SeedRooms)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room payload")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room payload")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err, "Failed to update room")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	if err := h.service.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Failed to delete room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

func (h *Handler) SeedRooms(c *gin.Context) {
	rooms, err := h.service.SeedRooms(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to seed rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room input")
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
