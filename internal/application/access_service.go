package application

import (
	"context"
	"fmt"

	"github.com/marketcrew/mc-cli/internal/ports"
)

// AccessService submits early-access requests. No session is required.
type AccessService struct {
	client ports.BackendClient
}

func NewAccessService(client ports.BackendClient) *AccessService {
	return &AccessService{client: client}
}

func (a *AccessService) Request(ctx context.Context, cmd AccessRequestCommand) error {
	if err := validateInput(cmd); err != nil {
		return err
	}

	if err := a.client.RequestAccess(ctx, ports.AccessRequest{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Message: cmd.Message,
	}); err != nil {
		return fmt.Errorf("submit access request: %w", err)
	}

	return nil
}
