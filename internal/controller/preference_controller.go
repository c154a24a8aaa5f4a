package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Countries(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
	auth    fiber.Handler
}

func NewPreferenceController(service service.IPreferenceService, auth fiber.Handler) IPreferenceController {
	return &preferenceController{service: service, auth: auth}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	r.Get("/catalog/v1/countries", c.Countries)

	h := r.Group("/preferences/v1")
	h.Use(c.auth)
	h.Get("", c.Get)
	h.Put("", c.Update)
}

func (c *preferenceController) Get(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get preferences", res))
}

func (c *preferenceController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update preferences", res))
}

func (c *preferenceController) Countries(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get countries", c.service.Catalog()))
}
