package ports

import (
	"context"

	"github.com/marketcrew/mc-cli/internal/domain"
)

// SessionRepository persists the single session record. Load returns a zero
// Session when nothing is stored; absence is the normal unauthenticated
// state, not an error.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
