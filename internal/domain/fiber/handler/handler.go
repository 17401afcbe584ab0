package handler

import (
	"errors"
	"strings"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the apperror taxonomy onto HTTP statuses. Validation
// and not-found messages name the offending id; anything upstream or
// unknown stays generic (dev detail is env-gated inside ErrorResponse).
func respondError(c *fiber.Ctx, err error) error {
	var ve *apperror.ValidationError
	switch {
	case errors.As(err, &ve):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: ve.Reason,
		})
	case apperror.IsNotFound(err):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusInternalServerError,
			Message: "internal server error",
		}, err)
	}
}

func validationError(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: util.FormatValidationErrors(err),
	})
}

// pageParams reads optional ?page= and ?page_size= query values.
func pageParams(c *fiber.Ctx) (page, pageSize int) {
	return c.QueryInt("page", 0), c.QueryInt("page_size", 0)
}

func fileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
