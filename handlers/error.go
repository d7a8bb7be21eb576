package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/trip-planner/site/logger"
	"github.com/trip-planner/site/ui"
)

// CustomErrorHandler renders application errors as an error page
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.Log.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, err.Error()))
}
