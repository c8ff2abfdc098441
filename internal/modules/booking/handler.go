package booking

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
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/preview", h.PreviewBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Booking input is invalid", vErr.Fields)
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) PreviewBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute preview")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ListBookings(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	bookings, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from/to must be RFC3339 timestamps")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrCancelWindow):
			response.Error(c, http.StatusConflict, "CANCEL_WINDOW_CLOSED",
				"Bookings cannot be cancelled within 2 hours of the start time")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}
