package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/pkg/cache"
)

// CacheMiddleware acelera las lecturas GET con una caché TTL en memoria y la
// invalida completa ante cualquier mutación exitosa. La clave incluye el rol:
// el mismo path puede responder distinto según quién pregunta.
func CacheMiddleware(store *cache.TTLCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			if err := c.Next(); err != nil {
				return err
			}
			// Cualquier mutación que respondió 2xx deja la caché obsoleta.
			if c.Response().StatusCode() < 300 {
				store.Clear()
			}
			return nil
		}

		key := GetRole(c) + ":" + c.OriginalURL()
		if body, ok := store.Get(key); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(body)
		}

		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			store.Set(key, body)
		}
		return nil
	}
}
