// Package auth is the boundary to the external identity provider. The
// service never authenticates credentials; it only verifies the bearer
// token the provider issued and hands the principal to downstream handlers.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"

	"fileshare-api/internal/access"
)

const localsKey = "auth_principal"

// Claims are the token claims the identity provider issues: sub carries the
// principal ID, privileged the administrator-equivalent flag.
type Claims struct {
	jwt.RegisteredClaims
	Privileged bool `json:"privileged"`
}

// Middleware validates the Authorization bearer token (HS256) and stores
// the resulting principal in the request locals.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			response := httpx.Unauthorized("Missing Authorization header")
			return httpx.SendResponse(c, response)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response := httpx.Unauthorized("Authorization header must be 'Bearer <token>'")
			return httpx.SendResponse(c, response)
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims,
			func(*jwt.Token) (interface{}, error) { return secret, nil },
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			response := httpx.Unauthorized("Invalid or expired token")
			return httpx.SendResponse(c, response)
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			response := httpx.Unauthorized("Token is missing a subject")
			return httpx.SendResponse(c, response)
		}
		id, err := uuid.Parse(sub)
		if err != nil {
			response := httpx.Unauthorized("Token subject is not a valid principal ID")
			return httpx.SendResponse(c, response)
		}

		c.Locals(localsKey, access.Principal{ID: id, Privileged: claims.Privileged})
		return c.Next()
	}
}

// FromContext returns the principal stored by Middleware.
func FromContext(c *fiber.Ctx) (access.Principal, bool) {
	p, ok := c.Locals(localsKey).(access.Principal)
	return p, ok
}
