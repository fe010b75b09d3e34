package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"job-portal/internal/pkg/jwt"
)

const ctxIdentityKey = "identity"

// Identity is the caller established by a verified bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects the request with 401 unless it carries a valid bearer
// token. Every token failure looks the same to the caller.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.Verify(token)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		}

		c.Locals(ctxIdentityKey, Identity{UserID: claims.UserID, Role: claims.Role})

		return c.Next()
	}
}

// RequireRoles must run after Middleware.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if _, ok := allowed[id.Role]; !ok {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

func IdentityFromCtx(c fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(ctxIdentityKey).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
