package assistantsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/intent"
	"github.com/hirelink/hirelink/assistant/interview"
	"github.com/hirelink/hirelink/assistant/rules"
	"github.com/hirelink/hirelink/pkg/errx"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/pkg/logx"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

const (
	recentApplicationLimit = 5
	searchResultLimit      = 5

	defaultGenerateTimeout = 5 * time.Second
	defaultPersistTimeout  = 3 * time.Second
	defaultCacheTTL        = 5 * time.Minute
)

// Service orchestrates assistant conversations. Replies come from the
// first strategy that can answer: cache, intent-specific insight,
// language model, then the static responder.
type Service struct {
	seekerRepo seekerRepository
	jobRepo    job.Repository
	appRepo    applicationRepository
	turnRepo   assistant.TurnRepository
	cache      assistant.ReplyCache
	generator  assistant.TextGenerator

	generateTimeout time.Duration
	persistTimeout  time.Duration
	cacheTTL        time.Duration
}

// seekerRepository is the slice of seeker.Repository the assistant
// needs
type seekerRepository interface {
	FindByID(ctx context.Context, id kernel.UserID) (*seeker.Seeker, error)
}

// applicationRepository is the slice of application.Repository the
// assistant needs
type applicationRepository interface {
	ListBySeeker(ctx context.Context, seekerID kernel.UserID, limit int) ([]*application.Detailed, error)
}

// NewService creates a new assistant service. A nil generator disables
// AI replies and routes everything through the static responder.
func NewService(
	seekerRepo seekerRepository,
	jobRepo job.Repository,
	appRepo applicationRepository,
	turnRepo assistant.TurnRepository,
	cache assistant.ReplyCache,
	generator assistant.TextGenerator,
) *Service {
	return &Service{
		seekerRepo:      seekerRepo,
		jobRepo:         jobRepo,
		appRepo:         appRepo,
		turnRepo:        turnRepo,
		cache:           cache,
		generator:       generator,
		generateTimeout: defaultGenerateTimeout,
		persistTimeout:  defaultPersistTimeout,
		cacheTTL:        defaultCacheTTL,
	}
}

// Configured reports whether a language model backs the assistant
func (s *Service) Configured() bool {
	return s.generator != nil
}

// Chat processes one assistant message and produces a reply
func (s *Service) Chat(ctx context.Context, userID kernel.UserID, req assistant.ChatRequest) (*assistant.ChatResponse, error) {
	// An in-progress interview consumes the message before anything
	// else, including validation
	if req.Context != nil && req.Context.InInterview {
		reply, next := interview.Advance(req.Message, *req.Context)
		resp := &assistant.ChatResponse{
			Reply:   reply,
			Mode:    assistant.ModeMockInterview,
			Context: &next,
		}
		s.persistTurn(userID, req.Message, resp)
		return resp, nil
	}

	if strings.TrimSpace(req.Message) == "" {
		return nil, assistant.ErrEmptyMessage()
	}

	skr, recent, err := s.loadUserContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, userID, req.Message); ok {
		resp := &assistant.ChatResponse{
			Reply:        cached.Reply,
			Jobs:         cached.Jobs,
			Applications: cached.Applications,
			Location:     cached.Location,
			Mode:         assistant.ModeCached,
		}
		s.persistTurn(userID, req.Message, resp)
		return resp, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(req.Message))
	summaries := summarizeApplications(recent, skr)

	if resp := s.routeIntent(ctx, userID, req.Message, normalized, skr, summaries); resp != nil {
		s.persistTurn(userID, req.Message, resp)
		return resp, nil
	}

	return s.answer(ctx, userID, req, skr, summaries)
}

// loadUserContext fetches the seeker and their recent applications
// concurrently. A missing user fails the request; infrastructure
// errors degrade the reply instead.
func (s *Service) loadUserContext(ctx context.Context, userID kernel.UserID) (*seeker.Seeker, []*application.Detailed, error) {
	var (
		skr    *seeker.Seeker
		recent []*application.Detailed
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.seekerRepo.FindByID(gctx, userID)
		if err != nil {
			if errors.Is(err, seeker.ErrSeekerNotFound()) {
				return assistant.ErrUserNotFound().WithDetail("user_id", userID.String())
			}
			logx.Warnf("assistant: failed to load seeker %s: %v", userID, err)
			return nil
		}
		skr = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := s.appRepo.ListBySeeker(gctx, userID, recentApplicationLimit)
		if err != nil {
			logx.Warnf("assistant: failed to load applications for %s: %v", userID, err)
			return nil
		}
		recent = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return skr, recent, nil
}

// routeIntent answers messages matching a known intent. A nil return
// falls through to the general search and AI path. Matching order is
// fixed: history, status, skill gap, profile, guidance, CV
// optimization, interview.
func (s *Service) routeIntent(ctx context.Context, userID kernel.UserID, message, normalized string, skr *seeker.Seeker, summaries []assistant.ApplicationSummary) *assistant.ChatResponse {
	switch {
	case intent.IsApplicationHistory(normalized):
		all, err := s.appRepo.ListBySeeker(ctx, userID, 0)
		if err != nil {
			logx.Warnf("assistant: failed to load application history for %s: %v", userID, err)
		}
		fullSummaries := summarizeApplications(all, skr)
		return &assistant.ChatResponse{
			Reply:        buildApplicationReply(fullSummaries, true),
			Applications: fullSummaries,
			Mode:         assistant.ModeApplicationHistory,
		}

	case intent.IsApplicationStatus(normalized):
		company := intent.ExtractCompany(message)
		reply, filtered := buildStatusReply(summaries, company)
		return &assistant.ChatResponse{
			Reply:        reply,
			Applications: filtered,
			Mode:         assistant.ModeApplicationStatus,
		}

	case intent.IsSkillGap(normalized):
		jobTitle := intent.ExtractJobTitle(message)
		if jobTitle == "" {
			return &assistant.ChatResponse{
				Reply: "Please specify a job title so I can analyze your skill gap. For example: 'skill gap for software engineer'.",
				Mode:  assistant.ModeSkillGapAnalysis,
			}
		}
		return &assistant.ChatResponse{
			Reply: s.analyzeSkillGap(ctx, skr, jobTitle),
			Mode:  assistant.ModeSkillGapAnalysis,
		}

	case intent.IsProfileCheck(normalized):
		return &assistant.ChatResponse{
			Reply: buildProfileReply(checkProfileCompleteness(skr)),
			Mode:  assistant.ModeProfileCompleteness,
		}

	case intent.IsGuidance(normalized):
		return &assistant.ChatResponse{
			Reply: guidanceReply(normalized),
			Mode:  assistant.ModeGuidance,
		}

	case intent.IsCVOptimize(normalized):
		jobTitle := intent.ExtractJobTitle(message)
		if jobTitle == "" {
			return &assistant.ChatResponse{
				Reply: "Please specify a job title to optimize your CV for. Example: 'optimize cv for software engineer'.",
				Mode:  assistant.ModeCVOptimization,
			}
		}
		return &assistant.ChatResponse{
			Reply: s.optimizeCV(ctx, skr, jobTitle),
			Mode:  assistant.ModeCVOptimization,
		}

	case intent.IsInterviewStart(normalized):
		reply, interviewCtx := interview.Start(message)
		resp := &assistant.ChatResponse{
			Reply: reply,
			Mode:  assistant.ModeMockInterview,
		}
		if interviewCtx.InInterview {
			resp.Context = &interviewCtx
		}
		return resp
	}

	return nil
}

// answer handles the general path: job search plus either the language
// model or the static responder.
func (s *Service) answer(ctx context.Context, userID kernel.UserID, req assistant.ChatRequest, skr *seeker.Seeker, summaries []assistant.ApplicationSummary) (*assistant.ChatResponse, error) {
	criteria := job.SearchCriteria{
		Title:       intent.ExtractJobTitle(req.Message),
		Location:    intent.ExtractLocation(req.Message),
		SalaryFloor: intent.ExtractSalary(req.Message),
	}

	var jobs []assistant.JobSummary
	if !criteria.IsEmpty() {
		found, err := s.jobRepo.Search(ctx, criteria, searchResultLimit)
		if err != nil {
			logx.Warnf("assistant: job search failed: %v", err)
		}
		jobs = make([]assistant.JobSummary, 0, len(found))
		for _, j := range found {
			jobs = append(jobs, assistant.NewJobSummary(j))
		}
	}

	role := seeker.RoleJobSeeker
	if skr != nil {
		role = skr.Role
	}

	if s.generator == nil {
		resp := &assistant.ChatResponse{
			Reply:        appendRuleSearchSummary(rules.Respond(req.Message, role), criteria, jobs),
			Jobs:         jobs,
			Applications: summaries,
			Location:     criteria.Location,
			Mode:         assistant.ModeRuleBased,
		}
		s.persistTurn(userID, req.Message, resp)
		return resp, nil
	}

	reply, err := s.generate(ctx, req, skr, summaries)
	if err != nil {
		logx.Warnf("assistant: generation failed, using static responder: %v", err)
		resp := &assistant.ChatResponse{
			Reply:        appendRuleSearchSummary(rules.Respond(req.Message, role), criteria, jobs),
			Jobs:         jobs,
			Applications: summaries,
			Location:     criteria.Location,
			Mode:         assistant.ModeRuleBasedFallback,
		}
		s.persistTurn(userID, req.Message, resp)
		return resp, nil
	}

	resp := &assistant.ChatResponse{
		Reply:        appendAISearchSummary(reply, criteria, jobs),
		Jobs:         jobs,
		Applications: summaries,
		Location:     criteria.Location,
		Mode:         assistant.ModeAIPowered,
	}

	s.persistTurn(userID, req.Message, resp)
	s.cache.Set(ctx, userID, req.Message, &assistant.CachedReply{
		Reply:        resp.Reply,
		Jobs:         resp.Jobs,
		Applications: resp.Applications,
		Location:     resp.Location,
		Mode:         resp.Mode,
	}, s.cacheTTL)

	return resp, nil
}

// generate asks the language model for a reply. The first turn of a
// conversation carries the platform and profile preamble.
func (s *Service) generate(ctx context.Context, req assistant.ChatRequest, skr *seeker.Seeker, summaries []assistant.ApplicationSummary) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	prompt := req.Message
	if len(req.History) == 0 {
		prompt = buildPrompt(req.Message, skr, summaries)
	}

	return s.generator.Generate(genCtx, prompt, req.History)
}

func buildPrompt(message string, skr *seeker.Seeker, summaries []assistant.ApplicationSummary) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant for HireLink, a job portal platform. ")
	b.WriteString("Help users search for jobs, track their applications, and improve their profiles. ")
	b.WriteString("Keep replies concise and friendly.\n\n")

	b.WriteString("User Profile:")
	if skr != nil {
		fmt.Fprintf(&b, " Name: %s. Role: %s.", skr.FullName, skr.Role)
		if len(skr.Skills) > 0 {
			fmt.Fprintf(&b, " Skills: %s.", strings.Join(skr.Skills, ", "))
		}
	} else {
		b.WriteString(" Unknown.")
	}
	if len(summaries) > 0 {
		fmt.Fprintf(&b, " Recent applications: %d.", len(summaries))
	}

	fmt.Fprintf(&b, "\n\nUser: %s", message)
	return b.String()
}

// searchSummary renders the deterministic sentence describing what a
// job search matched
func searchSummary(criteria job.SearchCriteria, count int) string {
	plural := ""
	if count > 1 {
		plural = "s"
	}

	summary := fmt.Sprintf("\n\nI found %d job%s", count, plural)
	if criteria.Title != "" {
		summary += fmt.Sprintf(" for %q", criteria.Title)
	}
	if criteria.Location != "" {
		summary += " in " + criteria.Location
	}
	if criteria.SalaryFloor != nil {
		summary += fmt.Sprintf(" with a salary over %v LPA", *criteria.SalaryFloor)
	}

	return summary
}

func appendRuleSearchSummary(reply string, criteria job.SearchCriteria, jobs []assistant.JobSummary) string {
	if criteria.IsEmpty() {
		return reply
	}
	if len(jobs) == 0 {
		return reply + "\n\nNo jobs found matching your criteria. Try broadening your search."
	}
	return reply + searchSummary(criteria, len(jobs)) + ". Here they are:"
}

func appendAISearchSummary(reply string, criteria job.SearchCriteria, jobs []assistant.JobSummary) string {
	if criteria.IsEmpty() {
		return reply
	}
	summary := searchSummary(criteria, len(jobs))
	if len(jobs) == 0 {
		return reply + summary + ". Try broadening your search criteria."
	}
	return reply + summary + ". Here's what I found:"
}

// persistTurn records the exchange without blocking the reply
func (s *Service) persistTurn(userID kernel.UserID, message string, resp *assistant.ChatResponse) {
	turn := &assistant.Turn{
		ID:        kernel.NewTurnID(uuid.NewString()),
		UserID:    userID,
		Message:   message,
		Reply:     resp.Reply,
		Mode:      resp.Mode,
		Jobs:      resp.Jobs,
		CreatedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
		defer cancel()
		if err := s.turnRepo.Create(ctx, turn); err != nil {
			logx.Warnf("assistant: failed to persist turn: %v", err)
		}
	}()
}

// ============================================================================
// Moderation
// ============================================================================

// ListTurns retrieves persisted turns for review, newest first
func (s *Service) ListTurns(ctx context.Context, filter assistant.TurnFilter, pagination kernel.PaginationOptions) (*kernel.Paginated[assistant.Turn], error) {
	turns, err := s.turnRepo.List(ctx, filter, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list assistant turns", errx.TypeInternal)
	}
	return turns, nil
}

// FlagTurn marks a turn for review
func (s *Service) FlagTurn(ctx context.Context, id kernel.TurnID, reason string) (*assistant.Turn, error) {
	if reason == "" {
		reason = assistant.DefaultFlagReason
	}
	turn, err := s.turnRepo.Flag(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	return turn, nil
}
