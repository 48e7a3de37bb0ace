package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBrandNameRequired    = errors.New("brand name is required")
	ErrEmailRequired        = errors.New("email address is required")
	ErrNoGeneratedContent   = errors.New("no generated content yet")
	ErrUnknownArtifact      = errors.New("artifact kind not present in current content set")
	ErrGenerationInFlight   = errors.New("a generation request is already in flight")
	ErrGenerationSuperseded = errors.New("generation response arrived after session reset")
)

// AuthError carries the backend's detail for a failed login or registration,
// or stands in with a generic message when the backend gave none.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail == "" {
		return "authentication failed"
	}
	return "authentication failed: " + e.Detail
}

// DeliveryInputError marks a delivery request rejected before any network
// call was made: missing address, missing content, missing brand name.
type DeliveryInputError struct {
	Err error
}

func (e *DeliveryInputError) Error() string {
	return fmt.Sprintf("delivery input: %v", e.Err)
}

func (e *DeliveryInputError) Unwrap() error {
	return e.Err
}
