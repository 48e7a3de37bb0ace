package application

import "github.com/marketcrew/mc-cli/internal/domain"

// Navigator surface: the selectable artifact kinds are always derived from
// the live content set, so a kind outside it is never offered.

// Kinds lists the artifact kinds present in the current content set, in
// declaration order. Nil when nothing has been generated.
func (o *Orchestrator) Kinds() []domain.ArtifactKind {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.content == nil {
		return nil
	}
	return o.content.Kinds()
}

func (o *Orchestrator) Select(kind domain.ArtifactKind) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.content == nil {
		return domain.ErrNoGeneratedContent
	}
	if _, ok := o.content.Get(kind); !ok {
		return domain.ErrUnknownArtifact
	}

	o.active = kind
	return nil
}

// Active returns the currently selected artifact kind and its text. The
// second return is false until a generation has succeeded.
func (o *Orchestrator) Active() (domain.ArtifactKind, string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.content == nil || o.active == "" {
		return "", "", false
	}

	text, ok := o.content.Get(o.active)
	if !ok {
		return "", "", false
	}

	return o.active, text, true
}
