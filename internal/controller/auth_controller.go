package controller

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", auth, c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Malformed request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Malformed request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.Get("User-Agent"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals(serverutils.LocalsUserID).(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return serverutils.NewUnauthorized("Invalid or expired token.")
	}

	if err := c.service.Logout(ctx.Context(), userId); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"detail": "Successfully logged out."})
}
