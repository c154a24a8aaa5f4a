package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	ListSaved(ctx *fiber.Ctx) error
	Unsave(ctx *fiber.Ctx) error
}

type jobController struct {
	service      service.IJobService
	auth         fiber.Handler
	optionalAuth fiber.Handler
}

func NewJobController(service service.IJobService, auth, optionalAuth fiber.Handler) IJobController {
	return &jobController{service: service, auth: auth, optionalAuth: optionalAuth}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jobs/v1")
	h.Get("", c.optionalAuth, c.Search)
	h.Get("/recommendations", c.optionalAuth, c.Recommendations)

	h.Get("/saved", c.auth, c.ListSaved)
	h.Post("/saved", c.auth, c.Save)
	h.Delete("/saved/:jobId", c.auth, c.Unsave)
}

func viewer(ctx *fiber.Ctx) service.JobViewer {
	v := service.JobViewer{Premium: serverutils.IsPremium(ctx)}
	if userId, err := serverutils.UserID(ctx); err == nil {
		v.UserId = &userId
	}
	return v
}

func (c *jobController) Search(ctx *fiber.Ctx) error {
	var req dto.JobSearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.BadRequest("invalid query")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.UserContext(), viewer(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search jobs", res))
}

func (c *jobController) Recommendations(ctx *fiber.Ctx) error {
	tab := ctx.Query("tab")
	if tab != "" && tab != "visa" && tab != "nonVisa" {
		return serverutils.BadRequest("tab must be visa or nonVisa")
	}
	res := c.service.Recommend(viewer(ctx), ctx.Query("skills"), tab)
	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *jobController) Save(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save job", res))
}

func (c *jobController) ListSaved(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSaved(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get saved jobs", res))
}

func (c *jobController) Unsave(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Unsave(ctx.UserContext(), userId, ctx.Params("jobId")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove saved job", nil))
}
