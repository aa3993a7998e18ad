package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"laptopMart/domain"
	"laptopMart/pkg/logger"
	"laptopMart/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		Recommend(ctx context.Context, variationID uint64) ([]domain.Recommendation, error)
		Rebuild(ctx context.Context) (int, error)
		Health() domain.RecommendHealth
	}

	RecommendQuery struct {
		VariationID uint64 `query:"variation_id" validate:"required"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/recommendations/:variation_id
func (h *RecommendHandler) RecommendByPath(c echo.Context) error {
	variationID, err := strconv.ParseUint(c.Param("variation_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid variation id"})
	}

	return h.recommend(c, variationID)
}

// GET /api/v1/recommendations?variation_id=123
func (h *RecommendHandler) RecommendByQuery(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return h.recommend(c, q.VariationID)
}

func (h *RecommendHandler) recommend(c echo.Context, variationID uint64) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.Recommend(ctx, variationID)

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrVariationNotFound) {
			metrics.RecommendRequests.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, ResponseError{Message: "variation not found"})
		}
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		logger.Error("recommend failed", "variation_id", variationID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/recommendations/health
func (h *RecommendHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.recommendService.Health())
}

// POST /api/v1/admin/recommendations/rebuild
func (h *RecommendHandler) Rebuild(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	items, err := h.recommendService.Rebuild(ctx)
	if err != nil {
		logger.Error("index rebuild failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"message": "feature index rebuilt",
		"items":   items,
	}))
}
