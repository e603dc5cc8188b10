package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tenantpulse/business/activity"
	"tenantpulse/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	EventHandler struct {
		validate        *validator.Validate
		activityService ActivityService
	}

	ActivityService interface {
		Record(ctx context.Context, event domain.ActivityEvent) (domain.ActivityEvent, error)
	}

	RecordEventRequest struct {
		TenantID   uint                   `json:"tenant_id" validate:"required"`
		UserID     uint                   `json:"user_id"`
		EventType  string                 `json:"event_type" validate:"required"`
		OccurredAt time.Time              `json:"occurred_at"`
		Context    map[string]interface{} `json:"context"`
	}
)

func NewEventHandler(svc ActivityService) *EventHandler {
	return &EventHandler{
		validate:        validator.New(),
		activityService: svc,
	}
}

// POST /api/v1/events
func (h *EventHandler) Record(c echo.Context) error {
	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := domain.ActivityEvent{
		TenantID:   req.TenantID,
		UserID:     req.UserID,
		EventType:  req.EventType,
		OccurredAt: req.OccurredAt,
		Context:    datatypes.JSONMap(req.Context),
	}

	stored, err := h.activityService.Record(c.Request().Context(), event)
	if err != nil {
		if errors.Is(err, activity.ErrUnknownEventType) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(stored))
}
