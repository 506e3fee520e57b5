package handlers

import (
	"github.com/go-playground/validator/v10"

	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

// NewValidator builds the request validator with the custom cedula rule
// registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return models.ValidCedula(fl.Field().String())
	})
	return v
}
