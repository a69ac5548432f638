// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorsToMap mengubah error validator/v10 menjadi map field → pesan
// untuk field Errors pada ErrorResponse.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "min":
			msg = "minimal " + fe.Param()
		case "max":
			msg = "maksimal " + fe.Param()
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		case "gte":
			msg = "harus >= " + fe.Param()
		case "lte":
			msg = "harus <= " + fe.Param()
		case "url":
			msg = "format URL tidak valid"
		case "uuid":
			msg = "format UUID tidak valid"
		default:
			msg = "format tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// JsonStructValidationError: satu baris di controller untuk error validate.Struct.
func JsonStructValidationError(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, ValidationErrorsToMap(err))
}
