package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	Open(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
	FAQs(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

// RegisterRoutes mounts the assistant API. Sessions are anonymous; the id
// is the only handle on a conversation.
func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Get("/faqs", c.FAQs)
	h.Post("/sessions", c.CreateSession)
	h.Get("/sessions/:id", c.Show)
	h.Post("/sessions/:id/messages", c.Ask)
	h.Post("/sessions/:id/open", c.Open)
	h.Post("/sessions/:id/close", c.Close)
}

func (c *assistantController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateAssistantSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return serverutils.BadRequest("invalid request body")
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Assistant session created", res))
}

func (c *assistantController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get assistant session", res))
}

// Ask accepts the question; the reply arrives later on the transcript.
func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskAssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	res, err := c.service.Ask(ctx.UserContext(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Message accepted", res))
}

func (c *assistantController) Open(ctx *fiber.Ctx) error {
	res, err := c.service.Open(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assistant opened", res))
}

func (c *assistantController) Close(ctx *fiber.Ctx) error {
	res, err := c.service.Close(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Assistant closed", res))
}

func (c *assistantController) FAQs(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get faqs", c.service.FAQs()))
}
