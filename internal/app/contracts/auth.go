package contracts

import (
	"context"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/dto/responses"
)

// AuthUsecase covers registration, login and logout. requesterRole is the
// role of the session performing the registration, empty for anonymous
// self-service signup.
type AuthUsecase interface {
	Register(ctx context.Context, requesterRole string, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
