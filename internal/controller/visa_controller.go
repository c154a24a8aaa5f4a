package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVisaController interface {
	RegisterRoutes(r fiber.Router)
	Countries(ctx *fiber.Ctx) error
	Requirements(ctx *fiber.Ctx) error
	Eligibility(ctx *fiber.Ctx) error
	CreateApplication(ctx *fiber.Ctx) error
	ListApplications(ctx *fiber.Ctx) error
	UpdateApplicationStatus(ctx *fiber.Ctx) error
}

type visaController struct {
	service service.IVisaService
	auth    fiber.Handler
}

func NewVisaController(service service.IVisaService, auth fiber.Handler) IVisaController {
	return &visaController{service: service, auth: auth}
}

func (c *visaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/visa/v1")
	h.Get("/countries", c.Countries)
	h.Get("/requirements", c.Requirements)
	h.Post("/eligibility", c.Eligibility)

	h.Get("/applications", c.auth, c.ListApplications)
	h.Post("/applications", c.auth, c.CreateApplication)
	h.Patch("/applications/:id/status", c.auth, c.UpdateApplicationStatus)
}

func (c *visaController) Countries(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get visa countries", c.service.Countries()))
}

func (c *visaController) Requirements(ctx *fiber.Ctx) error {
	country := ctx.Query("country")
	if country == "" {
		return serverutils.BadRequest("country is required")
	}

	res, err := c.service.Requirements(country)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get visa requirements", res))
}

func (c *visaController) Eligibility(ctx *fiber.Ctx) error {
	var req dto.EligibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CheckEligibility(&req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check eligibility", res))
}

func (c *visaController) CreateApplication(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateVisaApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateApplication(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create visa application", res))
}

func (c *visaController) ListApplications(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListApplications(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get visa applications", res))
}

func (c *visaController) UpdateApplicationStatus(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid application id")
	}

	var req dto.UpdateVisaApplicationStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateApplicationStatus(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update visa application", res))
}
