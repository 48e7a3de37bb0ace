package domain

import (
	"strings"
	"time"
)

// Session is the client's view of an authenticated identity. The token is an
// opaque bearer credential; the client never inspects it.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

func (s Session) IsLoggedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}
