package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"tastebook/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

var validate = validator.New()

// validateStruct runs the validate tags on a bound request body and turns the
// first failure into a 400 with the offending field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		msg := fmt.Sprintf("Invalid field %q: failed on %q", fe.Field(), fe.Tag())
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
}
