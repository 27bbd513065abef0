package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"notes-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Use(errorHandlerStub())
	app.Get("/protected", NewJwtMiddleware(tokens), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": ctx.Locals(LocalsUserID)})
	})
	return app
}

// Minimal stand-in for ErrorHandlerMiddleware to keep the test free of
// the logger dependency.
func errorHandlerStub() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		if appErr, ok := err.(*AppError); ok {
			return ctx.Status(appErr.Code).JSON(fiber.Map{"detail": appErr.Detail})
		}
		return err
	}
}

func TestJwtMiddleware(t *testing.T) {
	tokens := token.NewService("test_secret", time.Hour, 24*time.Hour)
	app := newTestApp(tokens)
	userID := uuid.New()

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("refresh token is rejected", func(t *testing.T) {
		pair, err := tokens.IssuePair(userID)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.Refresh)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := token.NewService("test_secret", -time.Minute, -time.Minute)
		pair, err := expired.IssuePair(userID)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.Access)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid access token resolves the user", func(t *testing.T) {
		pair, err := tokens.IssuePair(userID)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.Access)
		resp, _ := app.Test(req, -1)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, userID.String(), body["user_id"])
	})
}
