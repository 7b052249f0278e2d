package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthRequired(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  c.Locals("user_id"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func signWith(t *testing.T, method jwt.SigningMethod, secret string, expires time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:   "65f0c2b7a1b2c3d4e5f60718",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "missing cookie",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      "not-a-jwt",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "expired token",
			token:      signWith(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(-time.Minute)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong secret",
			token:      signWith(t, jwt.SigningMethodHS256, "other-secret", time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong signing method",
			token:      signWith(t, jwt.SigningMethodHS512, testSecret, time.Now().Add(time.Hour)),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			token:      signWith(t, jwt.SigningMethodHS256, testSecret, time.Now().Add(time.Hour)),
			wantStatus: http.StatusOK,
		},
	}

	app := newTestApp(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.token})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSignTokenRoundTrip(t *testing.T) {
	signed, err := SignToken(testSecret, "65f0c2b7a1b2c3d4e5f60718", "alice")
	require.NoError(t, err)

	var claims Claims
	token, err := jwt.ParseWithClaims(signed, &claims, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "65f0c2b7a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}
