package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAddonController interface {
	RegisterRoutes(r fiber.Router)
	Catalog(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
}

type addonController struct {
	service service.IServiceRequestService
	auth    fiber.Handler
}

func NewAddonController(service service.IServiceRequestService, auth fiber.Handler) IAddonController {
	return &addonController{service: service, auth: auth}
}

func (c *addonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/addons/v1")
	h.Get("/catalog", c.Catalog)

	h.Get("/requests", c.auth, c.List)
	h.Post("/requests", c.auth, c.Create)
	h.Patch("/requests/:id/status", c.auth, c.UpdateStatus)
}

func (c *addonController) Catalog(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get add-on catalog", c.service.Catalog()))
}

func (c *addonController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateServiceRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userId, serverutils.IsPremium(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create service request", res))
}

func (c *addonController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), userId, ctx.Query("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get service requests", res))
}

func (c *addonController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid request id")
	}

	var req dto.UpdateServiceRequestStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateStatus(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update service request", res))
}
