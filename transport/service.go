//go:generate moq -out service_mock.go . Service

package transport

import (
	"context"

	"github.com/kuadroapp/kuadro"
)

// Service interface.
type Service interface {
	Signup(ctx context.Context, in kuadro.SignupInput) (kuadro.AuthOutput, error)
	Login(ctx context.Context, in kuadro.LoginInput) (kuadro.AuthOutput, error)
	AuthUserIDFromToken(token string) (string, error)
	AuthUser(ctx context.Context) (kuadro.User, error)

	UploadImage(ctx context.Context, in kuadro.UploadImageInput) (kuadro.Image, error)
	Images(ctx context.Context, page, limit int) (kuadro.ImagesPage, error)
	Image(ctx context.Context, imageID string) (kuadro.Image, error)
	DeleteImage(ctx context.Context, imageID string) error
}
