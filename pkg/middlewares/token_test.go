package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	t_token "social_chat_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", JWTMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(MemberID(c))
	})
	return app
}

func TestJWTMiddleware(t *testing.T) {
	t_token.SetSecret("middleware-test-secret")
	tokenStr, err := t_token.GenerateJWT("user-9", string(t_token.RoleMember), "test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		build  func() *http.Request
		status int
		body   string
	}{
		{
			name: "bearer header",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/me", nil)
				req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokenStr)
				return req
			},
			status: http.StatusOK,
			body:   "user-9",
		},
		{
			name: "query",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/me?"+QueryToken+"="+tokenStr, nil)
			},
			status: http.StatusOK,
			body:   "user-9",
		},
		{
			name: "cookie",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/me", nil)
				req.AddCookie(&http.Cookie{Name: CookieToken, Value: tokenStr})
				return req
			},
			status: http.StatusOK,
			body:   "user-9",
		},
		{
			name: "missing",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/me", nil)
			},
			status: http.StatusUnauthorized,
			body:   `{"error":"Missing token"}`,
		},
		{
			name: "invalid",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/me", nil)
				req.Header.Set(fiber.HeaderAuthorization, "Bearer broken")
				return req
			},
			status: http.StatusUnauthorized,
			body:   `{"error":"Invalid token"}`,
		},
	}

	app := newApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(tt.build())
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.body, string(body))
		})
	}
}
