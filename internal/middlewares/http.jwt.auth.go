package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
)

const (
	LocalClientID  = "client_id"
	LocalJWTClaims = "jwt_claims"
)

func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := tokenManager.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(LocalClientID, claims.Subject)
		c.Locals(LocalJWTClaims, claims)
		return c.Next()
	}
}

// NewHTTPRoleMiddleware admits a verified token whose audience carries one of roles. It must run
// after NewHTTPJWTMiddleware.
func NewHTTPRoleMiddleware(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := c.Locals(LocalJWTClaims).(*sharedjwt.Claims)
		if !ok || claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authenticated client",
			})
		}

		for _, role := range roles {
			if claims.HasAudience(role) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient role",
		})
	}
}

func ClientIDFromContext(c fiber.Ctx) string {
	clientID, _ := c.Locals(LocalClientID).(string)
	return strings.TrimSpace(clientID)
}
