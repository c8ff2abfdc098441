package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook/internal/pkg/ist"
	"roombook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/estimate", h.Estimate)
}

func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	est, err := h.service.EstimateLocal(req.BaseHourlyRate, req.StartLocal, req.EndLocal)
	if err != nil {
		if errors.Is(err, ist.ErrMalformed) {
			response.Error(c, http.StatusBadRequest, "MALFORMED_TIME", "Time must look like YYYY-MM-DDTHH:mm")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute estimate")
		return
	}

	response.Success(c, http.StatusOK, est)
}
