package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// NewErrorHandler devuelve el ErrorHandler de Fiber que normaliza todos los
// errores al envelope estándar:
//   - ValidationError -> 422 con errores por campo
//   - ConflictError   -> 409 con mensaje legible
//   - ErrNotFound     -> 404 {"message": "Not found"}
//   - *fiber.Error    -> su propio status y mensaje
//   - resto           -> 500 genérico (el detalle solo va al log)
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Message: "Unprocessable Entity",
				Errors:  vErr.Fields,
			})
		}

		var cErr domain.ConflictError
		if errors.As(err, &cErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Message: cErr.Message,
			})
		}

		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Message: "Not found",
			})
		}

		var fErr *fiber.Error
		if errors.As(err, &fErr) {
			return c.Status(fErr.Code).JSON(dto.ErrorResponse{
				Message: fErr.Message,
			})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal Server Error",
		})
	}
}

// NotFoundHandler responde 404 para rutas no registradas; va al final del router.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Message: "Not found",
	})
}

// badRequest responde 400 con errores por campo (validación estructural).
func badRequest(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Message: "Bad Request",
		Errors:  fields,
	})
}
