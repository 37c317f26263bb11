package config

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupCORS admits the configured origins with credentials. With no origins configured
// any origin is allowed, without credentials.
func SetupCORS(app *fiber.App, allowedOrigins []string) {
	origins := strings.Join(allowedOrigins, ",")
	credentials := true
	if origins == "" {
		origins = "*"
		credentials = false
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: credentials,
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
	}))
}
