package controller

import (
	"afrimigrate-be/internal/dto"
	"afrimigrate-be/internal/pkg/serverutils"
	"afrimigrate-be/internal/service"
	"afrimigrate-be/pkg/skills"

	"github.com/gofiber/fiber/v2"
)

type ISkillsController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	Assess(ctx *fiber.Ctx) error
	ResumeSuggestions(ctx *fiber.Ctx) error
	Courses(ctx *fiber.Ctx) error
	InterviewQuestions(ctx *fiber.Ctx) error
	InterviewFeedback(ctx *fiber.Ctx) error
}

type skillsController struct {
	service      service.ISkillsService
	optionalAuth fiber.Handler
}

func NewSkillsController(service service.ISkillsService, optionalAuth fiber.Handler) ISkillsController {
	return &skillsController{service: service, optionalAuth: optionalAuth}
}

func (c *skillsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/skills/v1")
	h.Get("", c.Overview)
	h.Post("/assessment", c.Assess)
	h.Post("/resume/suggestions", c.optionalAuth, c.ResumeSuggestions)
	h.Get("/courses", c.Courses)
	h.Get("/interview-questions", c.InterviewQuestions)
	h.Post("/interview/feedback", c.optionalAuth, c.InterviewFeedback)
}

func (c *skillsController) Overview(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get skills overview", c.service.Overview()))
}

func (c *skillsController) Assess(ctx *fiber.Ctx) error {
	var req dto.AssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Assess(&req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success score assessment", res))
}

func (c *skillsController) ResumeSuggestions(ctx *fiber.Ctx) error {
	var req skills.Resume
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get resume suggestions", c.service.SuggestResume(&req, serverutils.IsPremium(ctx))))
}

func (c *skillsController) Courses(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get courses", c.service.Courses()))
}

func (c *skillsController) InterviewQuestions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get interview questions", c.service.InterviewQuestions()))
}

func (c *skillsController) InterviewFeedback(ctx *fiber.Ctx) error {
	var req dto.InterviewFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.InterviewFeedback(&req, serverutils.IsPremium(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get interview feedback", res))
}
