package middleware

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/pkg/jwt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService("secret")
	m := NewMiddleware("http://localhost:3000")

	app := fiber.New()
	app.Use(m.CORSMiddleware())
	whoami := func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(domain.LocalsUserID).(string))
	}
	app.Get("/private", m.AuthMiddleware(jwtService), whoami)
	app.Get("/public", m.OptionalAuthMiddleware(jwtService), whoami)
	return app, jwtService
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService := newTestApp(t)
	token, err := jwtService.GenerateTokenUser("alice")
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "alice", body(t, resp))
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "nope"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	app, jwtService := newTestApp(t)
	token, err := jwtService.GenerateTokenUser("alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", body(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/public", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body(t, resp))
}

func TestCORSMiddleware(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
