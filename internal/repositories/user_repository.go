package repositories

import (
	"errors"

	"contactform/internal/models"
)

// Sentinel errors returned by UserRepository implementations. Engine-specific
// failures are translated once at the repository boundary; callers branch
// with errors.Is and never see driver error codes.
var (
	// ErrDuplicateEmail reports that an insert hit the unique email
	// constraint. The constraint is the final authority on uniqueness
	// under concurrent submissions.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound reports that no record matched the lookup.
	ErrNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// FindByEmail looks up a user by exact (normalized) email.
	// Returns ErrNotFound when absent.
	FindByEmail(email string) (*models.User, error)
	// Create inserts the user and assigns its ID.
	// Returns ErrDuplicateEmail on a unique-constraint violation.
	Create(user *models.User) error
	// GetByID returns the user with the given ID, or ErrNotFound.
	GetByID(id uint) (*models.User, error)
	// ListAll returns every user, newest created_at first.
	ListAll() ([]models.User, error)
}
