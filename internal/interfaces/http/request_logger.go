package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RequestLogger middleware que loguea cada request con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// El ErrorHandler todavía no corrió; dejar que él fije el status real.
			if fErr, ok := err.(*fiber.Error); ok {
				status = fErr.Code
			}
		}

		log.Info().
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
