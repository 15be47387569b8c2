package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
)

// activeUserChecker es el contrato mínimo que necesita el middleware para verificar usuarios.
// Lo implementa *usecase.UserUseCase; el uso de interfaz evita acoplar el middleware al caso de uso.
type activeUserChecker interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// RequireActiveUser rechaza tokens de usuarios desactivados o eliminados después del login.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 403 Forbidden → usuario inactivo o inexistente.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireActiveUser(checker activeUserChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		active, err := checker.IsActive(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "USER_CHECK_FAILED",
				Message: "no se pudo verificar el usuario, intente más tarde",
			})
		}
		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "USER_INACTIVE",
				Message: "el usuario está inactivo",
			})
		}
		return c.Next()
	}
}
