package jobinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID              string          `db:"id"`
	Title           string          `db:"title"`
	Description     string          `db:"description"`
	Requirements    json.RawMessage `db:"requirements"`
	SalaryLPA       float64         `db:"salary_lpa"`
	Location        string          `db:"location"`
	JobType         string          `db:"job_type"`
	ExperienceLevel int             `db:"experience_level"`
	Positions       int             `db:"positions"`
	CompanyID       string          `db:"company_id"`
	CompanyName     string          `db:"company_name"`
	CompanyLogo     string          `db:"company_logo"`
	PostedBy        string          `db:"posted_by"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

const jobColumns = `
	id, title, description, requirements, salary_lpa, location,
	job_type, experience_level, positions, company_id, company_name,
	company_logo, posted_by, created_at, updated_at
`

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() (*job.Job, error) {
	var requirements []kernel.JobRequirement
	if len(m.Requirements) > 0 {
		if err := json.Unmarshal(m.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	return &job.Job{
		ID:              kernel.JobID(m.ID),
		Title:           kernel.JobTitle(m.Title),
		Description:     m.Description,
		Requirements:    requirements,
		SalaryLPA:       m.SalaryLPA,
		Location:        m.Location,
		JobType:         job.JobType(m.JobType),
		ExperienceLevel: m.ExperienceLevel,
		Positions:       m.Positions,
		Company: job.Company{
			ID:   kernel.CompanyID(m.CompanyID),
			Name: m.CompanyName,
			Logo: m.CompanyLogo,
		},
		PostedBy:  kernel.UserID(m.PostedBy),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) (*jobModel, error) {
	requirements, err := json.Marshal(j.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal requirements: %w", err)
	}

	return &jobModel{
		ID:              j.ID.String(),
		Title:           j.Title.String(),
		Description:     j.Description,
		Requirements:    requirements,
		SalaryLPA:       j.SalaryLPA,
		Location:        j.Location,
		JobType:         string(j.JobType),
		ExperienceLevel: j.ExperienceLevel,
		Positions:       j.Positions,
		CompanyID:       j.Company.ID.String(),
		CompanyName:     j.Company.Name,
		CompanyLogo:     j.Company.Logo,
		PostedBy:        j.PostedBy.String(),
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}, nil
}

func toEntities(models []jobModel) ([]job.Job, error) {
	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, *entity)
	}
	return entities, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job posting
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (
			id, title, description, requirements, salary_lpa, location,
			job_type, experience_level, positions, company_id, company_name,
			company_logo, posted_by, created_at, updated_at
		) VALUES (
			:id, :title, :description, :requirements, :salary_lpa, :location,
			:job_type, :experience_level, :positions, :company_id, :company_name,
			:company_logo, :posted_by, :created_at, :updated_at
		)
	`

	_, err = r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid posted_by user_id: %w", err)
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job posting
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model, err := fromEntity(jobEntity)
	if err != nil {
		return err
	}
	model.ID = id.String()

	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			requirements = :requirements,
			salary_lpa = :salary_lpa,
			location = :location,
			job_type = :job_type,
			experience_level = :experience_level,
			positions = :positions,
			company_name = :company_name,
			company_logo = :company_logo,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity()
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, jobColumns)

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities, err := toEntities(models)
	if err != nil {
		return nil, err
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// ListByUserID retrieves jobs posted by a specific user
func (r *PostgresJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to count user jobs: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE posted_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, jobColumns)

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, userID.String(), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list user jobs: %w", err)
	}

	entities, err := toEntities(models)
	if err != nil {
		return nil, err
	}

	return kernel.NewPaginated(entities, pagination, total), nil
}

// Search retrieves up to limit jobs matching the criteria, newest first
func (r *PostgresJobRepository) Search(ctx context.Context, criteria job.SearchCriteria, limit int) ([]*job.Job, error) {
	if limit <= 0 {
		limit = 5
	}

	// Build dynamic query
	whereConditions := []string{}
	args := []interface{}{}
	argCount := 1

	if criteria.Title != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("title ILIKE $%d", argCount))
		args = append(args, "%"+criteria.Title+"%")
		argCount++
	}

	if criteria.Location != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("location ILIKE $%d", argCount))
		args = append(args, "%"+criteria.Location+"%")
		argCount++
	}

	if criteria.SalaryFloor != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("salary_lpa >= $%d", argCount))
		args = append(args, *criteria.SalaryFloor)
		argCount++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = "WHERE " + whereConditions[0]
		for i := 1; i < len(whereConditions); i++ {
			whereClause += " AND " + whereConditions[i]
		}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY created_at DESC
		LIMIT $%d
	`, jobColumns, whereClause, argCount)

	args = append(args, limit)

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	entities := make([]*job.Job, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// FindNewestByTitle retrieves the most recent job whose title contains the text
func (r *PostgresJobRepository) FindNewestByTitle(ctx context.Context, title string) (*job.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE title ILIKE $1
		ORDER BY created_at DESC
		LIMIT 1
	`, jobColumns)

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, "%"+title+"%")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to find job by title: %w", err)
	}

	return model.toEntity()
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// CountByUserID counts the number of jobs posted by a user
func (r *PostgresJobRepository) CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to count user jobs: %w", err)
	}

	return count, nil
}

// CountApplications counts applications submitted for a job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, jobID.String())
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}
