package utils

import (
	"medicore-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
