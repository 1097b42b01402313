package assistant

import (
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// Mode identifies which strategy produced a reply
type Mode string

const (
	ModeRuleBased         Mode = "rule-based"
	ModeAIPowered         Mode = "ai-powered"
	ModeRuleBasedFallback Mode = "rule-based-fallback"
	ModeAIFallback        Mode = "ai-fallback"
	ModeCached            Mode = "cached"

	ModeApplicationHistory  Mode = "application-history"
	ModeApplicationStatus   Mode = "application-status"
	ModeSkillGapAnalysis    Mode = "skill-gap-analysis"
	ModeProfileCompleteness Mode = "profile-completeness"
	ModeGuidance            Mode = "guidance"
	ModeCVOptimization      Mode = "cv-optimization"
	ModeMockInterview       Mode = "mock-interview"
)

// Context carries conversation state the client echoes back on each
// request, used to drive the mock interview flow.
type Context struct {
	InInterview   bool   `json:"inInterview"`
	JobTitle      string `json:"jobTitle,omitempty"`
	QuestionIndex int    `json:"questionIndex"`
}

// Turn is one persisted exchange between a user and the assistant
type Turn struct {
	ID         kernel.TurnID  `db:"id" json:"id"`
	UserID     kernel.UserID  `db:"user_id" json:"user_id"`
	Message    string         `db:"message" json:"message"`
	Reply      string         `db:"reply" json:"reply"`
	Mode       Mode           `db:"mode" json:"mode"`
	Jobs       []JobSummary   `db:"jobs" json:"jobs,omitempty"`
	Flagged    bool           `db:"flagged" json:"flagged"`
	FlagReason string         `db:"flag_reason" json:"flag_reason,omitempty"`
	Meta       map[string]any `db:"meta" json:"meta,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// DefaultFlagReason is recorded when a turn is flagged without an
// explicit reason
const DefaultFlagReason = "Flagged by admin"

// Flag marks the turn for moderator review. An empty reason gets the
// default.
func (t *Turn) Flag(reason string) {
	if reason == "" {
		reason = DefaultFlagReason
	}
	t.Flagged = true
	t.FlagReason = reason
}
