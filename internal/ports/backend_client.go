package ports

import (
	"context"
	"io"

	"github.com/marketcrew/mc-cli/internal/domain"
)

type LoginResult struct {
	Token string
	// Profile is the server-stored brand profile, when the account has one.
	Profile *domain.BrandProfile
}

type AccessRequest struct {
	Name    string
	Email   string
	Message string
}

type BackendClient interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Generate(ctx context.Context, token, requestID string, profile domain.BrandProfile) (domain.ContentSet, error)
	SendEmail(ctx context.Context, token, toEmail string) error
	Download(ctx context.Context, token, brandName string, dst io.Writer) error
	RequestAccess(ctx context.Context, req AccessRequest) error
}
