package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// ClientHints просит браузер присылать ширину окна в заголовках,
// чтобы первый рендер страницы сразу выбирал нужную поверхность.
func ClientHints() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")
		c.Vary("Sec-CH-Viewport-Width", "Viewport-Width")
		return c.Next()
	}
}
