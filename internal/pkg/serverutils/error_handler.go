package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// error body. Internal errors are reported without their details.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return writeError(ctx, err)
	}
}

// ErrorHandler is the fiber.Config hook for errors raised outside the
// middleware chain (routing, body limits).
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return writeError(ctx, err)
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := StatusOf(err)
	body := ErrorResponse(status, err.Error())

	var appErr *AppError
	if errors.As(err, &appErr) {
		body.Message = appErr.Message
		body.Errors = appErr.Fields
	}
	if status == fiber.StatusInternalServerError {
		body.Message = "internal server error"
	}
	return ctx.Status(status).JSON(body)
}
