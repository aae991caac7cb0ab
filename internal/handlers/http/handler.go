package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weatherunion/weatherunion-go/internal/models"
	"github.com/weatherunion/weatherunion-go/pkg/weatherunion"
)

const timeoutDuration = 10 * time.Second

type weatherGetterService interface {
	GetByLocality(ctx context.Context, localityID string) (models.LocalityWeather, error)
	Localities() []models.LocalityInfo
	LocalityInfo(id string) (models.LocalityInfo, error)
}

type Handler struct {
	service weatherGetterService
}

func NewHandler(svc weatherGetterService) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) GetWeather(c *gin.Context) {
	localityID := c.Query("locality_id")
	if localityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locality_id query parameter is required"})
		return
	}
	ctxWithTimeout, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	data, err := h.service.GetByLocality(ctxWithTimeout, localityID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) ListLocalities(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Localities())
}

func (h *Handler) GetLocality(c *gin.Context) {
	info, err := h.service.LocalityInfo(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// statusFor maps the client error taxonomy onto response statuses.
func statusFor(err error) int {
	var unavailable *weatherunion.UnavailableError
	switch {
	case errors.Is(err, weatherunion.ErrNotSupported):
		return http.StatusNotFound
	case errors.Is(err, weatherunion.ErrKeyLimitExhausted):
		return http.StatusTooManyRequests
	case errors.Is(err, weatherunion.ErrCouldNotAuthenticate),
		errors.Is(err, weatherunion.ErrInvalidResponse):
		return http.StatusBadGateway
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
