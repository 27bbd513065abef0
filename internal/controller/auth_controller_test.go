package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	res       *dto.AuthResponse
	err       error
	loggedOut []uuid.UUID
}

func (s *stubAuthService) Register(context.Context, *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.res, s.err
}

func (s *stubAuthService) Login(context.Context, *dto.LoginRequest, string) (*dto.AuthResponse, error) {
	return s.res, s.err
}

func (s *stubAuthService) Logout(_ context.Context, userID uuid.UUID) error {
	s.loggedOut = append(s.loggedOut, userID)
	return s.err
}

func newAuthTestApp(svc *stubAuthService) (*fiber.App, *token.Service) {
	tokens := token.NewService("test_secret", time.Hour, 24*time.Hour)
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(testLogger{}))
	NewAuthController(svc).RegisterRoutes(app, serverutils.NewJwtMiddleware(tokens))
	return app, tokens
}

func TestRegisterEndpoint(t *testing.T) {
	userID := uuid.New()
	res := &dto.AuthResponse{
		User:    dto.UserDTO{Id: userID, Username: "alice", Email: "a@example.com"},
		Access:  "access-token",
		Refresh: "refresh-token",
	}
	app, _ := newAuthTestApp(&stubAuthService{res: res})

	t.Run("created with tokens", func(t *testing.T) {
		payload := `{"username":"alice","email":"a@example.com","password":"pw12345678"}`
		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "access-token", body["access"])
		assert.Equal(t, "refresh-token", body["refresh"])

		user, _ := body["user"].(map[string]interface{})
		assert.Equal(t, "alice", user["username"])
		assert.NotContains(t, user, "password")
	})

	t.Run("short password is a field error", func(t *testing.T) {
		payload := `{"username":"alice","password":"short"}`
		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string][]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body, "password")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		app, _ := newAuthTestApp(&stubAuthService{err: serverutils.NewUnauthorized("Invalid credentials")})

		payload := `{"username":"alice","password":"wrongwrong"}`
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Invalid credentials", body["detail"])
	})

	t.Run("success returns the pair", func(t *testing.T) {
		res := &dto.AuthResponse{
			User:   dto.UserDTO{Id: uuid.New(), Username: "alice"},
			Access: "access-token", Refresh: "refresh-token",
		}
		app, _ := newAuthTestApp(&stubAuthService{res: res})

		payload := `{"username":"alice","password":"pw12345678"}`
		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		app, _ := newAuthTestApp(&stubAuthService{})

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logs out the caller", func(t *testing.T) {
		svc := &stubAuthService{}
		app, tokens := newAuthTestApp(svc)
		userID := uuid.New()
		pair, _ := tokens.IssuePair(userID)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+pair.Access)
		resp, _ := app.Test(req, -1)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, []uuid.UUID{userID}, svc.loggedOut)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Successfully logged out.", body["detail"])
	})
}
