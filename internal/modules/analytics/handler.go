package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.Report)
}

func (h *Handler) Report(c *gin.Context) {
	rows, err := h.service.Report(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, ErrInvalidFilter) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from/to must be RFC3339 timestamps")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analytics")
		return
	}

	response.Success(c, http.StatusOK, rows)
}
