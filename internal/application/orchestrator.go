package application

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

// Orchestrator issues generation requests and owns the resulting content
// set, the generation status, and the active artifact selection. Content is
// replaced wholesale on success and left untouched on failure.
//
// At most one generation is in flight at a time, and a response is applied
// only if its request ID is still the current one; a reset (logout) while a
// request is outstanding supersedes the response instead of letting it write
// into torn-down state.
type Orchestrator struct {
	client ports.BackendClient
	logger *log.Logger

	mu        sync.Mutex
	status    domain.GenerationStatus
	requestID string
	content   *domain.ContentSet
	active    domain.ArtifactKind
}

func NewOrchestrator(client ports.BackendClient, logger *log.Logger) *Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Orchestrator{
		client: client,
		logger: logger,
		status: domain.GenerationIdle,
	}
}

func (o *Orchestrator) Generate(ctx context.Context, session domain.Session, profile domain.BrandProfile) (domain.ContentSet, error) {
	if strings.TrimSpace(profile.BrandName) == "" {
		return domain.ContentSet{}, domain.ErrBrandNameRequired
	}

	o.mu.Lock()
	if o.status == domain.GenerationPending {
		o.mu.Unlock()
		return domain.ContentSet{}, domain.ErrGenerationInFlight
	}
	requestID := uuid.NewString()
	o.status = domain.GenerationPending
	o.requestID = requestID
	o.mu.Unlock()

	content, err := o.client.Generate(ctx, session.Token, requestID, profile)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.requestID != requestID {
		o.logger.Warn("dropping stale generation response", "request_id", requestID)
		return domain.ContentSet{}, domain.ErrGenerationSuperseded
	}

	if err != nil {
		o.status = domain.GenerationFailed
		o.logger.Error("generation failed", "request_id", requestID, "brand", profile.BrandName, "err", err)
		return domain.ContentSet{}, fmt.Errorf("generate content: %w", err)
	}

	o.status = domain.GenerationSucceeded
	o.content = &content
	o.active, _ = content.FirstKind()
	o.logger.Debug("generation succeeded", "request_id", requestID, "artifacts", len(content.Artifacts))

	return content, nil
}

func (o *Orchestrator) Status() domain.GenerationStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Content returns the last generated content set, if any.
func (o *Orchestrator) Content() (domain.ContentSet, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.content == nil {
		return domain.ContentSet{}, false
	}
	return *o.content, true
}

func (o *Orchestrator) HasContent() bool {
	_, ok := o.Content()
	return ok
}

// Reset drops all generation state. It is the logout cascade for this
// component; any in-flight response is superseded by bumping the request ID.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.status = domain.GenerationIdle
	o.requestID = ""
	o.content = nil
	o.active = ""
}
