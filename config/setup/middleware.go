package setup

import (
	"log/slog"
	"quick-notes/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// ApplyMiddleware applies all global middleware to the Fiber app
func ApplyMiddleware(app *fiber.App, logger *slog.Logger) {
	app.Use(
		recover.New(),
		middleware.RequestLogger(logger),
		middleware.Security(),
		middleware.SameOrigin(),
	)
}
