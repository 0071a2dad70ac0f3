package utils

import (
	"medicore-service/internal/pkg/dto/requests"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructPasswordRule(t *testing.T) {
	base := requests.Register{Name: "Jo Hart", Email: "jo@example.com"}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"uppercase and special char pass", "Str0ng!pass", true},
		{"too short", "Ab!1", false},
		{"no uppercase", "weakpass!", false},
		{"no special char", "Weakpass1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := base
			request.Password = tc.password
			err := ValidateStruct(request)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateStructRoleRule(t *testing.T) {
	base := requests.Register{Name: "Jo Hart", Email: "jo@example.com", Password: "Str0ng!pass"}

	for _, role := range []string{"admin", "doctor", "receptionist", "patient"} {
		request := base
		request.Role = role
		assert.NoError(t, ValidateStruct(request), role)
	}

	request := base
	request.Role = "superuser"
	assert.Error(t, ValidateStruct(request))

	// Empty role is filled in later by the registration flow.
	assert.NoError(t, ValidateStruct(base))
}

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{
		Name:  "  Jo Hart ",
		Email: " Jo@Example.COM ",
		Role:  " Patient ",
	}
	SanitizeRegisterRequest(request)

	assert.Equal(t, "Jo Hart", request.Name)
	assert.Equal(t, "jo@example.com", request.Email)
	assert.Equal(t, "patient", request.Role)
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "jo@example.com", SanitizeEmail("  JO@example.Com "))
}

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("defaults when params are absent", func(t *testing.T) {
		page := BuildPaginationRequest(httptest.NewRequest("GET", "/patients", nil))
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
	})

	t.Run("reads page and page_size", func(t *testing.T) {
		page := BuildPaginationRequest(httptest.NewRequest("GET", "/patients?page=3&page_size=25", nil))
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 25, page.PageSize)
	})

	t.Run("rejects zero and garbage values", func(t *testing.T) {
		page := BuildPaginationRequest(httptest.NewRequest("GET", "/patients?page=0&page_size=abc", nil))
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("sess-1", "secret", time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("Str0ng!pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
