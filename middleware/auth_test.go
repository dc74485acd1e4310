package middleware

import (
	"fiber-ims/config"
	"fiber-ims/models"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGatedApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	ok := func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true})
	}

	app := fiber.New()
	app.Post("/movements", AuthMiddleware, RequireRoles(models.RoleAdmin, models.RoleManager), ok)
	app.Post("/adjustments", AuthMiddleware, RequireRoles(models.RoleAdmin), ok)
	app.Get("/dashboard", AuthMiddleware, ok)
	return app
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  1,
		"username": "tester",
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	app := setupGatedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestForgedTokenIsUnauthorized(t *testing.T) {
	app := setupGatedApp(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1, "username": "tester", "role": models.RoleAdmin,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuditorCannotReachStockMutationRoutes(t *testing.T) {
	app := setupGatedApp(t)
	auditor := tokenFor(t, models.RoleAuditor)

	for _, path := range []string{"/movements", "/adjustments"} {
		req := httptest.NewRequest("POST", path, nil)
		req.Header.Set("Authorization", "Bearer "+auditor)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, path)
	}

	// read-only routes stay open to auditors
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+auditor)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestManagerReachesMovementsButNotAdjustments(t *testing.T) {
	app := setupGatedApp(t)
	manager := tokenFor(t, models.RoleManager)

	req := httptest.NewRequest("POST", "/movements", nil)
	req.Header.Set("Authorization", "Bearer "+manager)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/adjustments", nil)
	req.Header.Set("Authorization", "Bearer "+manager)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminReachesEverything(t *testing.T) {
	app := setupGatedApp(t)
	admin := tokenFor(t, models.RoleAdmin)

	for _, route := range []struct{ method, path string }{
		{"POST", "/movements"},
		{"POST", "/adjustments"},
		{"GET", "/dashboard"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer "+admin)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, route.path)
	}
}
