package controller

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/notes")
	h.Use(auth)
	h.Get("/", c.List)
	h.Post("/", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Patch("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func callerID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIdStr, _ := ctx.Locals(serverutils.LocalsUserID).(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, serverutils.NewUnauthorized("Invalid or expired token.")
	}
	return userId, nil
}

// noteID treats an unparseable id the same as an absent row.
func noteID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewNotFound()
	}
	return id, nil
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), userId, ctx.Query("search"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Malformed request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequest("Malformed request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId, err := callerID(ctx)
	if err != nil {
		return err
	}
	id, err := noteID(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
