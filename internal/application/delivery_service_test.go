package application

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

func TestEmailWithEmptyAddressMakesNoNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	service := NewDeliveryService(backend)

	err := service.Email(context.Background(), domain.Session{Token: "tok"}, EmailCommand{To: "", ContentAvailable: true})
	require.Error(t, err)

	var inputErr *domain.DeliveryInputError
	require.ErrorAs(t, err, &inputErr)
	assert.ErrorIs(t, err, domain.ErrEmailRequired)
	assert.Zero(t, backend.emailCalls)
}

func TestEmailWithoutContentMakesNoNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	service := NewDeliveryService(backend)

	err := service.Email(context.Background(), domain.Session{Token: "tok"}, EmailCommand{To: "to@example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoGeneratedContent)
	assert.Zero(t, backend.emailCalls)
}

func TestEmailRejectsMalformedAddress(t *testing.T) {
	backend := &fakeBackend{}
	service := NewDeliveryService(backend)

	err := service.Email(context.Background(), domain.Session{Token: "tok"}, EmailCommand{To: "nope", ContentAvailable: true})
	require.Error(t, err)

	var inputErr *domain.DeliveryInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, backend.emailCalls)
}

func TestEmailSendsWhenInputValid(t *testing.T) {
	backend := &fakeBackend{}
	service := NewDeliveryService(backend)

	err := service.Email(context.Background(), domain.Session{Token: "tok"}, EmailCommand{To: "to@example.com", ContentAvailable: true})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.emailCalls)
	assert.Equal(t, "to@example.com", backend.lastEmailTo)
}

func TestDownloadRequiresBrandName(t *testing.T) {
	service := NewDeliveryService(&fakeBackend{})

	var buf bytes.Buffer
	err := service.Download(context.Background(), domain.Session{Token: "tok"}, "  ", &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBrandNameRequired)
}

func TestDownloadWritesStream(t *testing.T) {
	service := NewDeliveryService(&fakeBackend{downloadBody: "bundle"})

	var buf bytes.Buffer
	require.NoError(t, service.Download(context.Background(), domain.Session{Token: "tok"}, "Acme", &buf))
	assert.Equal(t, "bundle", buf.String())
}

func TestAccessRequestValidatesInput(t *testing.T) {
	backend := &fakeBackend{}
	service := NewAccessService(backend)

	err := service.Request(context.Background(), AccessRequestCommand{Name: "", Email: "jo@example.com"})
	require.Error(t, err)
	assert.Zero(t, backend.accessCalls)

	err = service.Request(context.Background(), AccessRequestCommand{Name: "Jo", Email: "bad"})
	require.Error(t, err)
	assert.Zero(t, backend.accessCalls)
}

func TestAccessRequestSubmits(t *testing.T) {
	backend := &fakeBackend{}
	service := NewAccessService(backend)

	err := service.Request(context.Background(), AccessRequestCommand{Name: "Jo", Email: "jo@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.accessCalls)
	assert.Equal(t, ports.AccessRequest{Name: "Jo", Email: "jo@example.com", Message: "hi"}, backend.lastAccess)
}
