package server

import (
	"errors"

	"event-state/core/logger"
	"event-state/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp creates the Fiber application with RayID tagging, request logging and JSON errors.
// Register NotFound after all routes.
func NewApp(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(logg),
	})

	// RayID must run first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		return c.Next()
	})

	return app
}

// NotFound answers unmatched routes with a JSON 404.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not Found"})
}

// ErrorHandler converts handler errors into JSON responses.
// Fiber errors keep their status; anything else is logged and reported as a 500 without details.
func ErrorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		logger.WithRayID(logg, c).Error("Request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
