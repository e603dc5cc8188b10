package router

import (
	"tenantpulse/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler, authRequired echo.MiddlewareFunc) {
	auth := api.Group("/auth")

	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout, authRequired)
}

func SetupPredictionRoutes(api *echo.Group, handler *rest.PredictionHandler, authRequired echo.MiddlewareFunc) {
	predictions := api.Group("/predictions/churn", authRequired)

	predictions.POST("/:tenant_id/calculate", handler.Calculate)
	predictions.GET("/:tenant_id/trend", handler.Trend)
	predictions.GET("/high-risk", handler.HighRisk)
}

func SetupLeadRoutes(api *echo.Group, handler *rest.LeadHandler, authRequired echo.MiddlewareFunc) {
	leads := api.Group("/leads", authRequired)

	leads.POST("/score", handler.Score)
	leads.GET("/top", handler.Top)
	leads.GET("", handler.ByQualification)
}

func SetupEventRoutes(api *echo.Group, handler *rest.EventHandler, authRequired echo.MiddlewareFunc) {
	events := api.Group("/events", authRequired)

	events.POST("", handler.Record)
}

func SetupScoringAdminRoutes(api *echo.Group, handler *rest.ScoringAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/scoring", authRequired, adminOnly)

	admin.GET("/:model/config", handler.GetConfig)
	admin.PUT("/:model/config", handler.UpdateConfig)
}
