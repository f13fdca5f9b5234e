package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Grenders/transport-api/internal/pkg/auth"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/pkg/utils"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// RequireAuth verifies the Bearer access token and stores the caller's
// identity in the request locals.
func RequireAuth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, apperrors.ErrUnauthorized)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.SendError(c, apperrors.ErrUnauthorized)
		}

		claims, err := tokens.Verify(parts[1], auth.TokenTypeAccess)
		if err != nil {
			return utils.SendError(c, apperrors.ErrInvalidToken)
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		return c.Next()
	}
}

// UserID reads the authenticated user's ID stored by RequireAuth.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}
