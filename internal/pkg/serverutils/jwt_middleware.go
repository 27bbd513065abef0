package serverutils

import (
	"notes-backend/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the ctx.Locals key holding the authenticated user id.
const LocalsUserID = "user_id"

// NewJwtMiddleware guards a route group with bearer-token auth. Only
// access tokens pass; refresh tokens are rejected like any other
// invalid credential.
func NewJwtMiddleware(tokens *token.Service) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return NewUnauthorized("Authentication credentials were not provided.")
		}
		tokenStr := authHeader[7:]

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return NewUnauthorized("Invalid or expired token.")
		}
		if claims.TokenType != token.TypeAccess {
			return NewUnauthorized("Invalid or expired token.")
		}

		ctx.Locals(LocalsUserID, claims.UserID.String())
		return ctx.Next()
	}
}
