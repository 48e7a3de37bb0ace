package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

type fakeBackend struct {
	mu sync.Mutex

	loginResult ports.LoginResult
	loginErr    error
	registerErr error

	generateFn    func(ctx context.Context, token, requestID string, profile domain.BrandProfile) (domain.ContentSet, error)
	generateCalls int

	emailErr    error
	emailCalls  int
	lastEmailTo string

	downloadBody string
	downloadErr  error

	accessCalls int
	lastAccess  ports.AccessRequest
}

var _ ports.BackendClient = (*fakeBackend)(nil)

func (f *fakeBackend) Register(context.Context, string, string) error {
	return f.registerErr
}

func (f *fakeBackend) Login(context.Context, string, string) (ports.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeBackend) Generate(ctx context.Context, token, requestID string, profile domain.BrandProfile) (domain.ContentSet, error) {
	f.mu.Lock()
	f.generateCalls++
	fn := f.generateFn
	f.mu.Unlock()

	if fn == nil {
		return domain.ContentSet{}, nil
	}
	return fn(ctx, token, requestID, profile)
}

func (f *fakeBackend) SendEmail(_ context.Context, _ string, toEmail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.emailCalls++
	f.lastEmailTo = toEmail
	return f.emailErr
}

func (f *fakeBackend) Download(_ context.Context, _, _ string, dst io.Writer) error {
	if f.downloadErr != nil {
		return f.downloadErr
	}

	_, err := dst.Write([]byte(f.downloadBody))
	return err
}

func (f *fakeBackend) RequestAccess(_ context.Context, req ports.AccessRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.accessCalls++
	f.lastAccess = req
	return nil
}

type fakeSessionRepo struct {
	mu      sync.Mutex
	session domain.Session
	loadErr error
	saveErr error
	clears  int
}

var _ ports.SessionRepository = (*fakeSessionRepo)(nil)

func (f *fakeSessionRepo) Load(context.Context) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, f.loadErr
}

func (f *fakeSessionRepo) Save(_ context.Context, session domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = session
	return nil
}

func (f *fakeSessionRepo) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clears++
	f.session = domain.Session{}
	return nil
}

type fixedClock struct {
	t time.Time
}

var _ ports.Clock = fixedClock{}

func (c fixedClock) Now() time.Time {
	return c.t
}
