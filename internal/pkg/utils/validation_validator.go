package utils

import (
	"medicore-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(`[!@#~$%^&*()\-_+=\{\}\[\]:;"'<>,.?\/|\\]`).MatchString(password)
	hasUppercase := regexp.MustCompile(`[A-Z]`).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleReceptionist, constvars.RolePatient:
		return true
	}
	return false
}
