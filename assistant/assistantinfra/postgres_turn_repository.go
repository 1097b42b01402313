package assistantinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/pkg/kernel"
)

// PostgresTurnRepository implements assistant.TurnRepository using
// PostgreSQL
type PostgresTurnRepository struct {
	db *sqlx.DB
}

// NewPostgresTurnRepository creates a new PostgreSQL turn repository
func NewPostgresTurnRepository(db *sqlx.DB) *PostgresTurnRepository {
	return &PostgresTurnRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type turnModel struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	Message    string          `db:"message"`
	Reply      string          `db:"reply"`
	Mode       string          `db:"mode"`
	Jobs       json.RawMessage `db:"jobs"`
	Flagged    bool            `db:"flagged"`
	FlagReason string          `db:"flag_reason"`
	Meta       json.RawMessage `db:"meta"`
	CreatedAt  time.Time       `db:"created_at"`
}

const turnColumns = `
	id, user_id, message, reply, mode, jobs, flagged, flag_reason, meta, created_at
`

func (m *turnModel) toEntity() (*assistant.Turn, error) {
	turn := &assistant.Turn{
		ID:         kernel.TurnID(m.ID),
		UserID:     kernel.UserID(m.UserID),
		Message:    m.Message,
		Reply:      m.Reply,
		Mode:       assistant.Mode(m.Mode),
		Flagged:    m.Flagged,
		FlagReason: m.FlagReason,
		CreatedAt:  m.CreatedAt,
	}

	if len(m.Jobs) > 0 {
		if err := json.Unmarshal(m.Jobs, &turn.Jobs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn jobs: %w", err)
		}
	}
	if len(m.Meta) > 0 {
		if err := json.Unmarshal(m.Meta, &turn.Meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn meta: %w", err)
		}
	}

	return turn, nil
}

func fromTurnEntity(t *assistant.Turn) (*turnModel, error) {
	jobs := t.Jobs
	if jobs == nil {
		jobs = []assistant.JobSummary{}
	}
	jobsJSON, err := json.Marshal(jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn jobs: %w", err)
	}

	var metaJSON json.RawMessage
	if t.Meta != nil {
		metaJSON, err = json.Marshal(t.Meta)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal turn meta: %w", err)
		}
	}

	return &turnModel{
		ID:         t.ID.String(),
		UserID:     t.UserID.String(),
		Message:    t.Message,
		Reply:      t.Reply,
		Mode:       string(t.Mode),
		Jobs:       jobsJSON,
		Flagged:    t.Flagged,
		FlagReason: t.FlagReason,
		Meta:       metaJSON,
		CreatedAt:  t.CreatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create persists a turn
func (r *PostgresTurnRepository) Create(ctx context.Context, turn *assistant.Turn) error {
	model, err := fromTurnEntity(turn)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO chat_turns (
			id, user_id, message, reply, mode, jobs, flagged, flag_reason, meta, created_at
		) VALUES (
			:id, :user_id, :message, :reply, :mode, :jobs, :flagged, :flag_reason, :meta, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create turn: %w", err)
	}

	return nil
}

// List retrieves turns matching the filter, newest first
func (r *PostgresTurnRepository) List(ctx context.Context, filter assistant.TurnFilter, pagination kernel.PaginationOptions) (*kernel.Paginated[assistant.Turn], error) {
	where := " WHERE 1=1"
	args := []interface{}{}
	argCount := 0

	if !filter.UserID.IsEmpty() {
		argCount++
		where += fmt.Sprintf(" AND user_id = $%d", argCount)
		args = append(args, filter.UserID.String())
	}
	if filter.Mode != "" {
		argCount++
		where += fmt.Sprintf(" AND mode = $%d", argCount)
		args = append(args, string(filter.Mode))
	}
	if filter.Flagged != nil {
		argCount++
		where += fmt.Sprintf(" AND flagged = $%d", argCount)
		args = append(args, *filter.Flagged)
	}
	if filter.From != nil {
		argCount++
		where += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		argCount++
		where += fmt.Sprintf(" AND created_at <= $%d", argCount)
		args = append(args, *filter.To)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM chat_turns" + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count turns: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	query := fmt.Sprintf(
		"SELECT %s FROM chat_turns%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		turnColumns, where, argCount+1, argCount+2,
	)
	args = append(args, pagination.PageSize, offset)

	var models []turnModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}

	turns := make([]assistant.Turn, 0, len(models))
	for i := range models {
		turn, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		turns = append(turns, *turn)
	}

	return kernel.NewPaginated(turns, pagination, total), nil
}

// GetByID retrieves a turn by ID
func (r *PostgresTurnRepository) GetByID(ctx context.Context, id kernel.TurnID) (*assistant.Turn, error) {
	query := fmt.Sprintf(`SELECT %s FROM chat_turns WHERE id = $1`, turnColumns)

	var model turnModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, assistant.ErrTurnNotFound()
		}
		return nil, fmt.Errorf("failed to get turn by id: %w", err)
	}

	return model.toEntity()
}

// Flag marks a turn for review and returns the updated row
func (r *PostgresTurnRepository) Flag(ctx context.Context, id kernel.TurnID, reason string) (*assistant.Turn, error) {
	query := fmt.Sprintf(`
		UPDATE chat_turns
		SET flagged = true, flag_reason = $2
		WHERE id = $1
		RETURNING %s
	`, turnColumns)

	var model turnModel
	err := r.db.GetContext(ctx, &model, query, id.String(), reason)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, assistant.ErrTurnNotFound()
		}
		return nil, fmt.Errorf("failed to flag turn: %w", err)
	}

	return model.toEntity()
}
