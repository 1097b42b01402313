package assistantsrv_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/assistantinfra"
	"github.com/hirelink/hirelink/assistant/assistantsrv"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeSeekerRepo struct {
	seeker *seeker.Seeker
	err    error
}

func (f *fakeSeekerRepo) FindByID(context.Context, kernel.UserID) (*seeker.Seeker, error) {
	return f.seeker, f.err
}

type fakeApplicationRepo struct {
	detailed  []*application.Detailed
	err       error
	lastLimit int
}

func (f *fakeApplicationRepo) ListBySeeker(_ context.Context, _ kernel.UserID, limit int) ([]*application.Detailed, error) {
	f.lastLimit = limit
	return f.detailed, f.err
}

type fakeJobRepo struct {
	searchResults []*job.Job
	searchErr     error
	newest        *job.Job
	newestErr     error
	lastCriteria  job.SearchCriteria
}

func (f *fakeJobRepo) Create(context.Context, *job.Job) error                  { return nil }
func (f *fakeJobRepo) Update(context.Context, kernel.JobID, *job.Job) error    { return nil }
func (f *fakeJobRepo) GetByID(context.Context, kernel.JobID) (*job.Job, error) { return nil, nil }
func (f *fakeJobRepo) Delete(context.Context, kernel.JobID) error              { return nil }
func (f *fakeJobRepo) List(context.Context, kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}
func (f *fakeJobRepo) ListByUserID(context.Context, kernel.UserID, kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}
func (f *fakeJobRepo) Search(_ context.Context, criteria job.SearchCriteria, _ int) ([]*job.Job, error) {
	f.lastCriteria = criteria
	return f.searchResults, f.searchErr
}
func (f *fakeJobRepo) FindNewestByTitle(context.Context, string) (*job.Job, error) {
	return f.newest, f.newestErr
}
func (f *fakeJobRepo) Exists(context.Context, kernel.JobID) (bool, error) { return false, nil }
func (f *fakeJobRepo) CountByUserID(context.Context, kernel.UserID) (int64, error) {
	return 0, nil
}
func (f *fakeJobRepo) CountApplications(context.Context, kernel.JobID) (int64, error) {
	return 0, nil
}

type fakeTurnRepo struct {
	mu    sync.Mutex
	turns []*assistant.Turn
}

func (f *fakeTurnRepo) Create(_ context.Context, turn *assistant.Turn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.turns = append(f.turns, turn)
	return nil
}

func (f *fakeTurnRepo) List(context.Context, assistant.TurnFilter, kernel.PaginationOptions) (*kernel.Paginated[assistant.Turn], error) {
	return nil, nil
}

func (f *fakeTurnRepo) GetByID(context.Context, kernel.TurnID) (*assistant.Turn, error) {
	return nil, assistant.ErrTurnNotFound()
}

func (f *fakeTurnRepo) Flag(context.Context, kernel.TurnID, string) (*assistant.Turn, error) {
	return nil, assistant.ErrTurnNotFound()
}

func (f *fakeTurnRepo) modes() []assistant.Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	modes := make([]assistant.Mode, 0, len(f.turns))
	for _, turn := range f.turns {
		modes = append(modes, turn.Mode)
	}
	return modes
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(context.Context, string, []assistant.HistoryMessage) (string, error) {
	f.calls++
	return f.reply, f.err
}

// ============================================================================
// Fixtures
// ============================================================================

const testUserID = kernel.UserID("user-1")

func testSeeker() *seeker.Seeker {
	return &seeker.Seeker{
		ID:       testUserID,
		FullName: "Asha Rao",
		Role:     seeker.RoleJobSeeker,
		Skills:   []string{"Go", "React"},
	}
}

func testDetailed(title, company, status string) *application.Detailed {
	return &application.Detailed{
		Application: application.Application{
			ID:       kernel.ApplicationID("app-" + title),
			JobID:    kernel.JobID("job-" + title),
			SeekerID: testUserID,
			Status:   application.Status(status),
		},
		Job: &job.Job{
			ID:      kernel.JobID("job-" + title),
			Title:   kernel.JobTitle(title),
			Company: job.Company{Name: company},
		},
	}
}

type testEnv struct {
	seekerRepo *fakeSeekerRepo
	appRepo    *fakeApplicationRepo
	jobRepo    *fakeJobRepo
	turnRepo   *fakeTurnRepo
	cache      *assistantinfra.MemoryReplyCache
	generator  *fakeGenerator
	service    *assistantsrv.Service
}

func newTestEnv(generator *fakeGenerator) *testEnv {
	env := &testEnv{
		seekerRepo: &fakeSeekerRepo{seeker: testSeeker()},
		appRepo:    &fakeApplicationRepo{},
		jobRepo:    &fakeJobRepo{},
		turnRepo:   &fakeTurnRepo{},
		cache:      assistantinfra.NewMemoryReplyCache(),
		generator:  generator,
	}

	var textGenerator assistant.TextGenerator
	if generator != nil {
		textGenerator = generator
	}
	env.service = assistantsrv.NewService(
		env.seekerRepo,
		env.jobRepo,
		env.appRepo,
		env.turnRepo,
		env.cache,
		textGenerator,
	)
	return env
}

// ============================================================================
// Tests
// ============================================================================

func TestChatRejectsEmptyMessage(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "   "})

	require.Error(t, err)
}

func TestChatRejectsUnknownUser(t *testing.T) {
	env := newTestEnv(nil)
	env.seekerRepo.seeker = nil
	env.seekerRepo.err = seeker.ErrSeekerNotFound()

	_, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, assistant.ErrUserNotFound())
}

func TestChatToleratesSeekerLookupFailure(t *testing.T) {
	env := newTestEnv(nil)
	env.seekerRepo.seeker = nil
	env.seekerRepo.err = errors.New("db down")

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeRuleBased, resp.Mode)
}

func TestChatRuleBasedWithoutGenerator(t *testing.T) {
	env := newTestEnv(nil)

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeRuleBased, resp.Mode)
	assert.Contains(t, resp.Reply, "Hello! Welcome to JobPortal")
}

func TestChatJobSearchSummary(t *testing.T) {
	env := newTestEnv(nil)
	env.jobRepo.searchResults = []*job.Job{
		{
			ID: "j1", Title: "Software Engineer", Location: "Bangalore", SalaryLPA: 14,
			JobType: job.JobTypeFullTime, ExperienceLevel: 2, Positions: 3,
			Company: job.Company{ID: "c1", Name: "Acme", Logo: "acme.png"},
		},
		{ID: "j2", Title: "Senior Software Engineer", Company: job.Company{Name: "Globex"}, Location: "Bangalore", SalaryLPA: 20},
	}

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "find software engineer jobs in Bangalore with salary over 12 lakhs",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeRuleBased, resp.Mode)
	assert.Contains(t, resp.Reply, `I found 2 jobs for "software engineer" in Bangalore with a salary over 12 LPA. Here they are:`)
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "Bangalore", resp.Location)

	card := resp.Jobs[0]
	assert.Equal(t, "FULL_TIME", card.JobType)
	assert.Equal(t, 2, card.ExperienceLevel)
	assert.Equal(t, 3, card.Positions)
	assert.Equal(t, kernel.CompanyID("c1"), card.Company.ID)
	assert.Equal(t, "Acme", card.Company.Name)
	assert.Equal(t, "acme.png", card.Company.Logo)

	assert.Equal(t, "software engineer", env.jobRepo.lastCriteria.Title)
	require.NotNil(t, env.jobRepo.lastCriteria.SalaryFloor)
	assert.Equal(t, 12.0, *env.jobRepo.lastCriteria.SalaryFloor)
}

func TestChatNoSearchResults(t *testing.T) {
	env := newTestEnv(nil)

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "find data scientist jobs",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "No jobs found matching your criteria")
}

func TestChatAIPoweredAndCached(t *testing.T) {
	generator := &fakeGenerator{reply: "Sure, happy to help!"}
	env := newTestEnv(generator)

	first, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "tell me about remote work"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ModeAIPowered, first.Mode)
	assert.Equal(t, "Sure, happy to help!", first.Reply)

	// Same message again comes from the cache without another call
	second, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "Tell me about REMOTE work  "})
	require.NoError(t, err)
	assert.Equal(t, assistant.ModeCached, second.Mode)
	assert.Equal(t, first.Reply, second.Reply)
	assert.Equal(t, 1, generator.calls)
}

func TestChatFallsBackWhenGeneratorFails(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("quota exceeded")}
	env := newTestEnv(generator)
	env.jobRepo.searchResults = []*job.Job{
		{ID: "j1", Title: "Backend Developer", Company: job.Company{Name: "Acme"}},
	}

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "find backend developer jobs",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeRuleBasedFallback, resp.Mode)
	assert.Contains(t, resp.Reply, `I found 1 job for "backend developer". Here they are:`)
	assert.Len(t, resp.Jobs, 1)
}

func TestChatFallsBackWhenContextCancelled(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("context deadline exceeded")}
	env := newTestEnv(generator)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := env.service.Chat(ctx, testUserID, assistant.ChatRequest{Message: "tell me something"})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeRuleBasedFallback, resp.Mode)
	assert.NotEmpty(t, resp.Reply)
}

func TestChatFailedGenerationIsNotCached(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("boom")}
	env := newTestEnv(generator)

	_, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "tell me something"})
	require.NoError(t, err)

	generator.err = nil
	generator.reply = "Recovered."
	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "tell me something"})
	require.NoError(t, err)
	assert.Equal(t, assistant.ModeAIPowered, resp.Mode)
	assert.Equal(t, 2, generator.calls)
}

func TestChatInterviewFlow(t *testing.T) {
	env := newTestEnv(nil)

	start, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "start a mock interview for a backend developer",
	})
	require.NoError(t, err)
	assert.Equal(t, assistant.ModeMockInterview, start.Mode)
	require.NotNil(t, start.Context)
	assert.True(t, start.Context.InInterview)

	next, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "SQL is relational, NoSQL is not",
		Context: start.Context,
	})
	require.NoError(t, err)
	assert.Contains(t, next.Reply, "**Question 2:**")
	require.NotNil(t, next.Context)
	assert.Equal(t, 1, next.Context.QuestionIndex)
}

func TestChatApplicationHistory(t *testing.T) {
	env := newTestEnv(nil)
	env.appRepo.detailed = []*application.Detailed{
		testDetailed("Backend Developer", "Acme", "PENDING"),
		testDetailed("Data Scientist", "Globex", "REJECTED"),
	}

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "show me my application history",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeApplicationHistory, resp.Mode)
	assert.Contains(t, resp.Reply, "Here is the latest update on your 2 applications:")
	assert.Contains(t, resp.Reply, "Backend Developer at Acme — Status: PENDING.")
	assert.Contains(t, resp.Reply, "Data Scientist at Globex — Status: REJECTED. No specific feedback was provided.")
	assert.Equal(t, 0, env.appRepo.lastLimit)
}

func TestChatApplicationStatusWithoutApplications(t *testing.T) {
	env := newTestEnv(nil)

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "application status please",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeApplicationStatus, resp.Mode)
	assert.Contains(t, resp.Reply, "I couldn't find any applications for your account.")
}

func TestChatSkillGap(t *testing.T) {
	env := newTestEnv(nil)
	env.jobRepo.newest = &job.Job{
		ID:           "j1",
		Title:        "Backend Developer",
		Requirements: []kernel.JobRequirement{"Go", "SQL"},
	}

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "skill gap for backend developer",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeSkillGapAnalysis, resp.Mode)
	assert.Contains(t, resp.Reply, "you're missing 1 key skill(s): **sql**")
	assert.Contains(t, resp.Reply, "go, react")
}

func TestChatSkillGapUnknownJob(t *testing.T) {
	env := newTestEnv(nil)
	env.jobRepo.newestErr = errors.New("not found")

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "skill gap for underwater basket weaver",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "I couldn't find a job matching the title")
}

func TestChatProfileCompleteness(t *testing.T) {
	env := newTestEnv(nil)
	env.seekerRepo.seeker = &seeker.Seeker{
		ID:        testUserID,
		FullName:  "Asha Rao",
		Role:      seeker.RoleJobSeeker,
		Bio:       "Backend engineer with seven years of experience building payment systems.",
		Skills:    []string{"Go", "SQL", "Docker", "Kubernetes", "AWS"},
		ResumeURL: "https://cdn.example.com/resume.pdf",
	}

	resp, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{
		Message: "is my profile complete?",
	})

	require.NoError(t, err)
	assert.Equal(t, assistant.ModeProfileCompleteness, resp.Mode)
	assert.Contains(t, resp.Reply, "**75%** complete")
	assert.Contains(t, resp.Reply, "Upload a professional profile photo.")
}

func TestChatPersistsTurns(t *testing.T) {
	env := newTestEnv(nil)

	_, err := env.service.Chat(context.Background(), testUserID, assistant.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		modes := env.turnRepo.modes()
		return len(modes) == 1 && modes[0] == assistant.ModeRuleBased
	}, time.Second, 10*time.Millisecond)
}
