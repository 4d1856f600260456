package repository

import (
	"context"

	"github.com/fintrack/expense-service/internal/domain/entity"
)

// ExpenseRepository persists expense records. Every single-row operation is
// owner-scoped: the id and the owner are matched in one statement so a miss
// never reveals whether the row exists for someone else.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	ListByOwner(ctx context.Context, userID string) ([]entity.Expense, error)
	GetOwned(ctx context.Context, id, userID string) (*entity.Expense, error)
	// UpdateOwned replaces the mutable fields of the expense identified by
	// e.ID and e.UserID. The owner column is never part of the SET clause.
	UpdateOwned(ctx context.Context, e *entity.Expense) error
	DeleteOwned(ctx context.Context, id, userID string) error
}
