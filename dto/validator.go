package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/mapalk/mapa_core/model"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateRole(fl validator.FieldLevel) bool {
	return model.Role(fl.Field().String()).Valid()
}
