package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"tenantpulse/business/scoring"
	"tenantpulse/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	LeadHandler struct {
		validate    *validator.Validate
		leadService LeadService
	}

	LeadService interface {
		ScoreUser(ctx context.Context, userID uint) (domain.LeadScoreResult, error)
		GetTopLeads(ctx context.Context, limit int) ([]domain.TopLead, error)
		GetLeadsByQualification(ctx context.Context, qualification string) ([]domain.TopLead, error)
	}

	ScoreLeadRequest struct {
		UserID uint `json:"user_id" validate:"required"`
	}
)

func NewLeadHandler(svc LeadService) *LeadHandler {
	return &LeadHandler{
		validate:    validator.New(),
		leadService: svc,
	}
}

// POST /api/v1/leads/score
func (h *LeadHandler) Score(c echo.Context) error {
	var req ScoreLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	result, err := h.leadService.ScoreUser(c.Request().Context(), req.UserID)
	if err != nil {
		if errors.Is(err, scoring.ErrSubjectNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(result))
}

// GET /api/v1/leads/top?limit=10
func (h *LeadHandler) Top(c echo.Context) error {
	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "limit must be a positive integer"})
		}
		limit = parsed
	}

	leads, err := h.leadService.GetTopLeads(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(leads))
}

// GET /api/v1/leads?qualification=hot
func (h *LeadHandler) ByQualification(c echo.Context) error {
	qualification := c.QueryParam("qualification")
	if qualification == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "qualification is required"})
	}

	leads, err := h.leadService.GetLeadsByQualification(c.Request().Context(), qualification)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidQualification) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "unknown qualification"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(leads))
}
