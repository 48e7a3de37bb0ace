package domain

// GenerationStatus drives UI affordances around the asynchronous generation
// call. It is advisory state, not retry logic.
type GenerationStatus string

const (
	GenerationIdle      GenerationStatus = "idle"
	GenerationPending   GenerationStatus = "pending"
	GenerationSucceeded GenerationStatus = "succeeded"
	GenerationFailed    GenerationStatus = "failed"
)
