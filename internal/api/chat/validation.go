package chat

import "github.com/go-playground/validator/v10"

// RegisterValidations adds the chat-specific tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("session_id", func(fl validator.FieldLevel) bool {
		return IsValidSessionID(fl.Field().String())
	})
}
