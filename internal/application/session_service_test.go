package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

func TestRestoreMissingSessionIsNotAnError(t *testing.T) {
	service := NewSessionService(&fakeSessionRepo{}, &fakeBackend{}, nil)

	session, err := service.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn())
}

func TestRestoreReturnsPersistedSessionWithoutServerValidation(t *testing.T) {
	repo := &fakeSessionRepo{session: domain.Session{Token: "tok", Email: "a@b.com"}}
	service := NewSessionService(repo, &fakeBackend{}, nil)

	session, err := service.Restore(context.Background())
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "a@b.com", session.Email)
}

func TestLoginPersistsTokenAndReturnsProfile(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	profile := &domain.BrandProfile{BrandName: "Acme", Tone: domain.ToneFriendly}
	repo := &fakeSessionRepo{}
	backend := &fakeBackend{loginResult: ports.LoginResult{Token: "tok-123", Profile: profile}}
	service := NewSessionService(repo, backend, fixedClock{t: now})

	result, err := service.Login(context.Background(), LoginCommand{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Session.Token)
	assert.Equal(t, "a@b.com", result.Session.Email)
	assert.Equal(t, now, result.Session.CreatedAt)
	assert.Equal(t, profile, result.Profile)

	assert.Equal(t, "tok-123", repo.session.Token)
}

func TestLoginRejectsInvalidEmailBeforeTransport(t *testing.T) {
	service := NewSessionService(&fakeSessionRepo{}, &fakeBackend{}, nil)

	_, err := service.Login(context.Background(), LoginCommand{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Detail, "invalid email address")
}

func TestLoginSurfacesBackendAuthError(t *testing.T) {
	backend := &fakeBackend{loginErr: &domain.AuthError{Detail: "Invalid credentials"}}
	service := NewSessionService(&fakeSessionRepo{}, backend, nil)

	_, err := service.Login(context.Background(), LoginCommand{Email: "a@b.com", Password: "x"})
	require.Error(t, err)

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Detail)
}

func TestRegisterDoesNotEstablishSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	service := NewSessionService(repo, &fakeBackend{}, nil)

	require.NoError(t, service.Register(context.Background(), RegisterCommand{Email: "a@b.com", Password: "x"}))
	assert.False(t, repo.session.IsLoggedIn())
}

func TestLogoutIsIdempotent(t *testing.T) {
	repo := &fakeSessionRepo{session: domain.Session{Token: "tok"}}
	service := NewSessionService(repo, &fakeBackend{}, nil)

	require.NoError(t, service.Logout(context.Background()))
	require.NoError(t, service.Logout(context.Background()))
	assert.False(t, repo.session.IsLoggedIn())
	assert.Equal(t, 2, repo.clears)
}
