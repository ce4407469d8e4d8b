// internal/handler/router.go
package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// NewServer builds the echo instance with middlewares and routes.
func NewServer(h *BoardHandler, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	RegisterMiddlewares(e, log)
	RegisterRoutes(e, h)
	return e
}

func RegisterMiddlewares(e *echo.Echo, log zerolog.Logger) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zerolog.InfoLevel
			if v.Status >= 500 {
				level = zerolog.ErrorLevel
			}
			log.WithLevel(level).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Err(v.Error).
				Msg("HTTP request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
}

func RegisterRoutes(e *echo.Echo, h *BoardHandler) {
	e.GET("/healthz", h.HealthHandler)

	api := e.Group("/api")
	api.GET("/board", h.GetBoardHandler)
	api.GET("/board/export.xlsx", h.ExportBoardHandler)

	api.GET("/tasks/:id", h.GetTaskHandler)
	api.POST("/tasks", h.CreateTaskHandler)
	api.PATCH("/tasks/:id", h.UpdateTaskHandler)
	api.PUT("/tasks/:id/status", h.UpdateTaskStatusHandler)
	api.DELETE("/tasks/:id", h.DeleteTaskHandler)

	api.GET("/labels", h.ListLabelsHandler)
	api.POST("/labels", h.CreateLabelHandler)
	api.DELETE("/labels/:name", h.DeleteLabelHandler)
}
