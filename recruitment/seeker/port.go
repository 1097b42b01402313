package seeker

import (
	"context"

	"github.com/hirelink/hirelink/pkg/kernel"
)

type Repository interface {
	// Create creates a new account
	Create(ctx context.Context, seeker *Seeker) error

	// Update updates an existing account
	Update(ctx context.Context, id kernel.UserID, seeker *Seeker) error

	// FindByID retrieves an account by ID
	FindByID(ctx context.Context, id kernel.UserID) (*Seeker, error)

	// FindByEmail retrieves an account by email
	FindByEmail(ctx context.Context, email kernel.Email) (*Seeker, error)

	// List retrieves accounts with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Seeker], error)

	// Exists checks if an account exists by ID
	Exists(ctx context.Context, id kernel.UserID) (bool, error)
}
