package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	AddDocument(ctx *fiber.Ctx) error
	RemoveDocument(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
	auth    fiber.Handler
}

func NewProfileController(service service.IProfileService, auth fiber.Handler) IProfileController {
	return &profileController{service: service, auth: auth}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(c.auth)
	h.Get("", c.Show)
	h.Put("", c.Save)
	h.Post("/documents", c.AddDocument)
	h.Delete("/documents/:documentId", c.RemoveDocument)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *profileController) Save(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	res, err := c.service.Save(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save profile", res))
}

func (c *profileController) AddDocument(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.AddProfileDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddDocument(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add document", res))
}

func (c *profileController) RemoveDocument(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RemoveDocument(ctx.UserContext(), userId, ctx.Params("documentId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove document", res))
}
