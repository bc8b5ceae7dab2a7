package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fileshare-api/internal/access"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, sub string, privileged bool, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
		Privileged: privileged,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newTestApp(got *access.Principal) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Middleware(testSecret), func(c *fiber.Ctx) error {
		p, ok := FromContext(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		*got = p
		return c.SendStatus(http.StatusOK)
	})
	return app
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	id := uuid.New()
	var got access.Principal
	app := newTestApp(&got)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, id.String(), true, time.Hour))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if got.ID != id {
		t.Errorf("principal ID = %v, want %v", got.ID, id)
	}
	if !got.Privileged {
		t.Error("privileged flag was not carried over")
	}
}

func TestMiddlewareRejectsBadTokens(t *testing.T) {
	var got access.Principal
	app := newTestApp(&got)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic abc"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{
			name:   "wrong signing key",
			header: "Bearer " + signToken(t, []byte("other-secret"), uuid.NewString(), false, time.Hour),
		},
		{
			name:   "expired token",
			header: "Bearer " + signToken(t, testSecret, uuid.NewString(), false, -time.Hour),
		},
		{
			name:   "subject is not a uuid",
			header: "Bearer " + signToken(t, testSecret, "alice", false, time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
			}
		})
	}
}
