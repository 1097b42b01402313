package assistant

import (
	"context"
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// TurnRepository defines persistence for assistant turns
type TurnRepository interface {
	// Create persists a turn
	Create(ctx context.Context, turn *Turn) error

	// List retrieves turns matching the filter, newest first
	List(ctx context.Context, filter TurnFilter, pagination kernel.PaginationOptions) (*kernel.Paginated[Turn], error)

	// GetByID retrieves a turn by ID
	GetByID(ctx context.Context, id kernel.TurnID) (*Turn, error)

	// Flag marks a turn for review
	Flag(ctx context.Context, id kernel.TurnID, reason string) (*Turn, error)
}

// CachedReply is a previously computed response stored per user and
// message
type CachedReply struct {
	Reply        string               `json:"reply"`
	Jobs         []JobSummary         `json:"jobs,omitempty"`
	Applications []ApplicationSummary `json:"applications,omitempty"`
	Location     string               `json:"location,omitempty"`
	Mode         Mode                 `json:"mode"`
}

// ReplyCache stores replies keyed by user and normalized message.
// Expired entries count as misses and are evicted on read.
type ReplyCache interface {
	Get(ctx context.Context, userID kernel.UserID, message string) (*CachedReply, bool)
	Set(ctx context.Context, userID kernel.UserID, message string, reply *CachedReply, ttl time.Duration)
}

// TextGenerator produces free-form replies from a language model. A
// nil generator means the feature is unconfigured and rule-based
// replies are used instead.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, history []HistoryMessage) (string, error)
}
