package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	util "qr-attendance/pkg/utils"
)

// respondError writes the {msg, success:false} shape for err. Internal causes are logged, never returned.
func respondError(c *fiber.Ctx, err error) error {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(apperror.HTTPStatus(kind)).JSON(models.ErrorResponse{
		Msg:     apperror.PublicMessage(err),
		Success: false,
	})
}

func respondValidation(c *fiber.Ctx, errs []models.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
		Msg:     "Validation failed",
		Success: false,
		Errors:  errs,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Msg: msg, Success: false})
}

// numericParam parses a positive numeric route parameter such as :userId.
func numericParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := util.ParseNumericID(c.Params(name))
	if err != nil {
		return 0, apperror.Validation("Invalid " + name)
	}
	return id, nil
}
