package application

import (
	"context"
	"fmt"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

// SessionService owns the session token lifecycle: restore at startup, write
// on login, clear on logout. Nothing else mutates the persisted record.
type SessionService struct {
	repo   ports.SessionRepository
	client ports.BackendClient
	clock  ports.Clock
}

func NewSessionService(repo ports.SessionRepository, client ports.BackendClient, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		repo:   repo,
		client: client,
		clock:  clock,
	}
}

type LoginResult struct {
	Session domain.Session
	// Profile is the server-stored brand profile for the account, when one
	// exists; callers adopt it wholesale.
	Profile *domain.BrandProfile
}

// Restore loads the persisted session without re-validating it against the
// backend. A missing record yields a zero session and no error.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	session, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return session, nil
}

func (s *SessionService) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := validateInput(cmd); err != nil {
		return LoginResult{}, &domain.AuthError{Detail: err.Error()}
	}

	result, err := s.client.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return LoginResult{}, err
	}

	session := domain.Session{
		Token:     result.Token,
		Email:     cmd.Email,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("persist session: %w", err)
	}

	return LoginResult{Session: session, Profile: result.Profile}, nil
}

// Register creates an account but does not establish a session; the caller
// is expected to switch to the login flow afterwards.
func (s *SessionService) Register(ctx context.Context, cmd RegisterCommand) error {
	if err := validateInput(cmd); err != nil {
		return &domain.AuthError{Detail: err.Error()}
	}

	return s.client.Register(ctx, cmd.Email, cmd.Password)
}

// Logout clears the persisted session. It is idempotent and total: callers
// owning dependent state (profile, generation results, view) reset it in
// response to this call.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
