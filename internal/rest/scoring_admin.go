package rest

import (
	"context"
	"errors"
	"net/http"

	"tenantpulse/business/scoring"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ScoringAdminHandler struct {
		validate      *validator.Validate
		configService ConfigService
	}

	ConfigService interface {
		EffectiveConfig(ctx context.Context, model string) (scoring.Config, error)
		UpdateConfig(ctx context.Context, model string, update scoring.Config) (scoring.Config, error)
	}

	UpdateConfigRequest struct {
		ModelVersion   string             `json:"model_version"`
		Weights        map[string]float64 `json:"weights"`
		Thresholds     map[string]int     `json:"thresholds"`
		ConfidenceBase float64            `json:"confidence_base"`
		ConfidenceStep float64            `json:"confidence_step"`
		ConfidenceMax  float64            `json:"confidence_max"`
	}

	ConfigResponse struct {
		Model          string             `json:"model"`
		ModelVersion   string             `json:"model_version"`
		Weights        map[string]float64 `json:"weights"`
		Thresholds     map[string]int     `json:"thresholds"`
		ConfidenceBase float64            `json:"confidence_base"`
		ConfidenceStep float64            `json:"confidence_step"`
		ConfidenceMax  float64            `json:"confidence_max"`
	}
)

func NewScoringAdminHandler(svc ConfigService) *ScoringAdminHandler {
	return &ScoringAdminHandler{
		validate:      validator.New(),
		configService: svc,
	}
}

func toConfigResponse(model string, cfg scoring.Config) ConfigResponse {
	return ConfigResponse{
		Model:          model,
		ModelVersion:   cfg.ModelVersion,
		Weights:        cfg.Weights,
		Thresholds:     cfg.Thresholds,
		ConfidenceBase: cfg.ConfidenceBase,
		ConfidenceStep: cfg.ConfidenceStep,
		ConfidenceMax:  cfg.ConfidenceMax,
	}
}

// GET /api/v1/admin/scoring/:model/config
func (h *ScoringAdminHandler) GetConfig(c echo.Context) error {
	model := c.Param("model")

	cfg, err := h.configService.EffectiveConfig(c.Request().Context(), model)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownModel) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "unknown scoring model"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toConfigResponse(model, cfg)))
}

// PUT /api/v1/admin/scoring/:model/config
func (h *ScoringAdminHandler) UpdateConfig(c echo.Context) error {
	model := c.Param("model")

	var req UpdateConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	update := scoring.Config{
		ModelVersion:   req.ModelVersion,
		Weights:        req.Weights,
		Thresholds:     req.Thresholds,
		ConfidenceBase: req.ConfidenceBase,
		ConfidenceStep: req.ConfidenceStep,
		ConfidenceMax:  req.ConfidenceMax,
	}

	cfg, err := h.configService.UpdateConfig(c.Request().Context(), model, update)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownModel) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "unknown scoring model"})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(toConfigResponse(model, cfg)))
}
