package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Страница карты обслуживается этим же сервисом; внешние origin нужны только для dev-сервера фронтенда.
func CORS(origins string) fiber.Handler {
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5173"
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type,Accept,Accept-Language",
	})
}
