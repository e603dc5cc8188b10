package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"tenantpulse/business/scoring"
	"tenantpulse/domain"
	"tenantpulse/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	PredictionHandler struct {
		churnService ChurnService
	}

	ChurnService interface {
		CalculateChurnRisk(ctx context.Context, tenantID uint) (domain.ChurnRiskResult, error)
		GetChurnTrend(ctx context.Context, tenantID uint, days int) ([]domain.ChurnTrendPoint, error)
		GetHighRiskTenants(ctx context.Context, limit int) ([]domain.HighRiskTenant, error)
	}
)

func NewPredictionHandler(svc ChurnService) *PredictionHandler {
	return &PredictionHandler{
		churnService: svc,
	}
}

func pathID(c echo.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// POST /api/v1/predictions/churn/:tenant_id/calculate
func (h *PredictionHandler) Calculate(c echo.Context) error {
	tenantID, ok := pathID(c, "tenant_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid tenant id"})
	}

	start := time.Now()

	result, err := h.churnService.CalculateChurnRisk(c.Request().Context(), tenantID)

	metrics.PredictionLatency.WithLabelValues("churn_calculate").Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, scoring.ErrSubjectNotFound) {
			metrics.PredictionRequests.WithLabelValues("churn_calculate", "not_found").Inc()
			return c.JSON(http.StatusNotFound, ResponseError{Message: "tenant not found"})
		}
		metrics.PredictionRequests.WithLabelValues("churn_calculate", "error").Inc()
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.PredictionRequests.WithLabelValues("churn_calculate", "ok").Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}

// GET /api/v1/predictions/churn/:tenant_id/trend?days=30
func (h *PredictionHandler) Trend(c echo.Context) error {
	tenantID, ok := pathID(c, "tenant_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid tenant id"})
	}

	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "days must be a positive integer"})
		}
		days = parsed
	}

	points, err := h.churnService.GetChurnTrend(c.Request().Context(), tenantID, days)
	if err != nil {
		if errors.Is(err, scoring.ErrSubjectNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(points))
}

// GET /api/v1/predictions/churn/high-risk?limit=20
func (h *PredictionHandler) HighRisk(c echo.Context) error {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "limit must be a positive integer"})
		}
		limit = parsed
	}

	tenants, err := h.churnService.GetHighRiskTenants(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(tenants))
}
