package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

// DeliveryService triggers download and email delivery of the last generated
// content set. Input problems are rejected before any network call.
type DeliveryService struct {
	client ports.BackendClient
}

func NewDeliveryService(client ports.BackendClient) *DeliveryService {
	return &DeliveryService{client: client}
}

func (d *DeliveryService) Email(ctx context.Context, session domain.Session, cmd EmailCommand) error {
	if strings.TrimSpace(cmd.To) == "" {
		return &domain.DeliveryInputError{Err: domain.ErrEmailRequired}
	}
	if err := validateInput(cmd); err != nil {
		return &domain.DeliveryInputError{Err: err}
	}
	if !cmd.ContentAvailable {
		return &domain.DeliveryInputError{Err: domain.ErrNoGeneratedContent}
	}

	if err := d.client.SendEmail(ctx, session.Token, cmd.To); err != nil {
		return fmt.Errorf("deliver email: %w", err)
	}

	return nil
}

// Download streams the backend's rendered bundle for the given brand name
// into dst. Delivery is keyed by brand name only, so two accounts sharing a
// brand name collide on the backend side.
func (d *DeliveryService) Download(ctx context.Context, session domain.Session, brandName string, dst io.Writer) error {
	if strings.TrimSpace(brandName) == "" {
		return &domain.DeliveryInputError{Err: domain.ErrBrandNameRequired}
	}

	if err := d.client.Download(ctx, session.Token, brandName, dst); err != nil {
		return fmt.Errorf("deliver download: %w", err)
	}

	return nil
}
