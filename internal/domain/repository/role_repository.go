package repository

import (
	"context"

	"github.com/fintrack/expense-service/internal/domain/entity"
)

// RoleRepository manages the fixed role vocabulary and its user assignments.
type RoleRepository interface {
	// Ensure inserts the role if absent and returns the row either way.
	// Idempotent: any number of calls leaves exactly one row per name.
	Ensure(ctx context.Context, name string) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	Assign(ctx context.Context, userID, roleID string) error
	NamesForUser(ctx context.Context, userID string) ([]string, error)
}
