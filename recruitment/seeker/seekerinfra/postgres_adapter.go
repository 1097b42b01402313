package seekerinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// PostgresSeekerRepository implements seeker.Repository using PostgreSQL
type PostgresSeekerRepository struct {
	db *sqlx.DB
}

// NewPostgresSeekerRepository creates a new PostgreSQL account repository
func NewPostgresSeekerRepository(db *sqlx.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type seekerModel struct {
	ID           string         `db:"id"`
	FullName     string         `db:"full_name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Role         string         `db:"role"`
	Skills       pq.StringArray `db:"skills"`
	Bio          string         `db:"bio"`
	ResumeURL    sql.NullString `db:"resume_url"`
	PhotoURL     sql.NullString `db:"photo_url"`
	Verification string         `db:"verification"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

const seekerColumns = `
	id, full_name, email, password_hash, role, skills, bio,
	resume_url, photo_url, verification, created_at, updated_at
`

func (m *seekerModel) toEntity() *seeker.Seeker {
	return &seeker.Seeker{
		ID:           kernel.UserID(m.ID),
		FullName:     m.FullName,
		Email:        kernel.Email(m.Email),
		PasswordHash: m.PasswordHash,
		Role:         seeker.Role(m.Role),
		Skills:       []string(m.Skills),
		Bio:          m.Bio,
		ResumeURL:    kernel.BucketURL(m.ResumeURL.String),
		PhotoURL:     kernel.BucketURL(m.PhotoURL.String),
		Verification: seeker.VerificationStatus(m.Verification),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(s *seeker.Seeker) *seekerModel {
	return &seekerModel{
		ID:           s.ID.String(),
		FullName:     s.FullName,
		Email:        s.Email.String(),
		PasswordHash: s.PasswordHash,
		Role:         string(s.Role),
		Skills:       pq.StringArray(s.Skills),
		Bio:          s.Bio,
		ResumeURL:    sql.NullString{String: s.ResumeURL.String(), Valid: !s.ResumeURL.IsEmpty()},
		PhotoURL:     sql.NullString{String: s.PhotoURL.String(), Valid: s.PhotoURL.String() != ""},
		Verification: string(s.Verification),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new account
func (r *PostgresSeekerRepository) Create(ctx context.Context, seekerEntity *seeker.Seeker) error {
	model := fromEntity(seekerEntity)

	query := `
		INSERT INTO seekers (
			id, full_name, email, password_hash, role, skills, bio,
			resume_url, photo_url, verification, created_at, updated_at
		) VALUES (
			:id, :full_name, :email, :password_hash, :role, :skills, :bio,
			:resume_url, :photo_url, :verification, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return seeker.ErrEmailAlreadyExists()
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Update updates an existing account
func (r *PostgresSeekerRepository) Update(ctx context.Context, id kernel.UserID, seekerEntity *seeker.Seeker) error {
	model := fromEntity(seekerEntity)
	model.ID = id.String()

	query := `
		UPDATE seekers SET
			full_name = :full_name,
			email = :email,
			password_hash = :password_hash,
			role = :role,
			skills = :skills,
			bio = :bio,
			resume_url = :resume_url,
			photo_url = :photo_url,
			verification = :verification,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return seeker.ErrSeekerNotFound()
	}

	return nil
}

// FindByID retrieves an account by ID
func (r *PostgresSeekerRepository) FindByID(ctx context.Context, id kernel.UserID) (*seeker.Seeker, error) {
	query := fmt.Sprintf(`SELECT %s FROM seekers WHERE id = $1`, seekerColumns)

	var model seekerModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, seeker.ErrSeekerNotFound()
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return model.toEntity(), nil
}

// FindByEmail retrieves an account by email
func (r *PostgresSeekerRepository) FindByEmail(ctx context.Context, email kernel.Email) (*seeker.Seeker, error) {
	query := fmt.Sprintf(`SELECT %s FROM seekers WHERE email = $1`, seekerColumns)

	var model seekerModel
	err := r.db.GetContext(ctx, &model, query, email.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, seeker.ErrSeekerNotFound()
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves accounts with pagination
func (r *PostgresSeekerRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[seeker.Seeker], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM seekers`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM seekers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, seekerColumns)

	var models []seekerModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities := make([]seeker.Seeker, 0, len(models))
	for i := range models {
		entities = append(entities, *models[i].toEntity())
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// Exists checks if an account exists by ID
func (r *PostgresSeekerRepository) Exists(ctx context.Context, id kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM seekers WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return exists, nil
}
