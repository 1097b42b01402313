package applicationinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID        string    `db:"id"`
	JobID     string    `db:"job_id"`
	SeekerID  string    `db:"seeker_id"`
	Status    string    `db:"status"`
	Feedback  string    `db:"feedback"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// detailedModel carries the joined job columns. Job columns are null
// when the posting has been removed.
type detailedModel struct {
	applicationModel
	JobTitle           sql.NullString  `db:"job_title"`
	JobDescription     sql.NullString  `db:"job_description"`
	JobRequirements    json.RawMessage `db:"job_requirements"`
	JobSalaryLPA       sql.NullFloat64 `db:"job_salary_lpa"`
	JobLocation        sql.NullString  `db:"job_location"`
	JobType            sql.NullString  `db:"job_type"`
	JobExperienceLevel sql.NullInt64   `db:"job_experience_level"`
	JobPositions       sql.NullInt64   `db:"job_positions"`
	CompanyID          sql.NullString  `db:"company_id"`
	CompanyName        sql.NullString  `db:"company_name"`
	CompanyLogo        sql.NullString  `db:"company_logo"`
	JobCreatedAt       sql.NullTime    `db:"job_created_at"`
}

const applicationColumns = `
	id, job_id, seeker_id, status, feedback, created_at, updated_at
`

func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:        kernel.ApplicationID(m.ID),
		JobID:     kernel.JobID(m.JobID),
		SeekerID:  kernel.UserID(m.SeekerID),
		Status:    application.Status(m.Status),
		Feedback:  m.Feedback,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (m *detailedModel) toDetailed() (*application.Detailed, error) {
	detailed := &application.Detailed{
		Application: *m.applicationModel.toEntity(),
	}

	if m.JobTitle.Valid {
		var requirements []kernel.JobRequirement
		if len(m.JobRequirements) > 0 {
			if err := json.Unmarshal(m.JobRequirements, &requirements); err != nil {
				return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
			}
		}

		detailed.Job = &job.Job{
			ID:              kernel.JobID(m.JobID),
			Title:           kernel.JobTitle(m.JobTitle.String),
			Description:     m.JobDescription.String,
			Requirements:    requirements,
			SalaryLPA:       m.JobSalaryLPA.Float64,
			Location:        m.JobLocation.String,
			JobType:         job.JobType(m.JobType.String),
			ExperienceLevel: int(m.JobExperienceLevel.Int64),
			Positions:       int(m.JobPositions.Int64),
			Company: job.Company{
				ID:   kernel.CompanyID(m.CompanyID.String),
				Name: m.CompanyName.String,
				Logo: m.CompanyLogo.String,
			},
			CreatedAt: m.JobCreatedAt.Time,
		}
	}

	return detailed, nil
}

func fromEntity(a *application.Application) *applicationModel {
	return &applicationModel{
		ID:        a.ID.String(),
		JobID:     a.JobID.String(),
		SeekerID:  a.SeekerID.String(),
		Status:    string(a.Status),
		Feedback:  a.Feedback,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, seeker_id, status, feedback, created_at, updated_at
		) VALUES (
			:id, :job_id, :seeker_id, :status, :feedback, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return application.ErrApplicationAlreadyExists()
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Update updates an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	model := fromEntity(app)
	model.ID = id.String()

	query := `
		UPDATE applications SET
			status = :status,
			feedback = :feedback,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// ListBySeeker retrieves a seeker's applications with job details,
// most recently updated first
func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID kernel.UserID, limit int) ([]*application.Detailed, error) {
	query := `
		SELECT
			a.id, a.job_id, a.seeker_id, a.status, a.feedback,
			a.created_at, a.updated_at,
			j.title AS job_title,
			j.description AS job_description,
			j.requirements AS job_requirements,
			j.salary_lpa AS job_salary_lpa,
			j.location AS job_location,
			j.job_type,
			j.experience_level AS job_experience_level,
			j.positions AS job_positions,
			j.company_id,
			j.company_name,
			j.company_logo,
			j.created_at AS job_created_at
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.seeker_id = $1
		ORDER BY a.updated_at DESC
	`

	args := []interface{}{seekerID.String()}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var models []detailedModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeker applications: %w", err)
	}

	detailed := make([]*application.Detailed, 0, len(models))
	for i := range models {
		d, err := models[i].toDetailed()
		if err != nil {
			return nil, err
		}
		detailed = append(detailed, d)
	}

	return detailed, nil
}

// ListByJob retrieves applications for a job posting with pagination
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, jobID.String()); err != nil {
		return nil, fmt.Errorf("failed to count job applications: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM applications
		WHERE job_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, applicationColumns)

	var models []applicationModel
	err := r.db.SelectContext(ctx, &models, query, jobID.String(), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}

	entities := make([]application.Application, 0, len(models))
	for i := range models {
		entities = append(entities, *models[i].toEntity())
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// ExistsByJobAndSeeker checks if a seeker already applied to a job
func (r *PostgresApplicationRepository) ExistsByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, jobID.String(), seekerID.String())
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// CountBySeeker counts a seeker's applications
func (r *PostgresApplicationRepository) CountBySeeker(ctx context.Context, seekerID kernel.UserID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE seeker_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, seekerID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to count seeker applications: %w", err)
	}

	return count, nil
}
