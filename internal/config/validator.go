package config

import (
	"RuleChatbot/internal/api/chat"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := chat.RegisterValidations(validate); err != nil {
		panic(err)
	}

	return validate
}
