package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/internal/domain/repository"
)

// ExpenseRepository stores expenses in Postgres. Amounts travel as text on
// both sides of the wire and are cast to NUMERIC in SQL, so no float ever
// touches a monetary value.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Expense ids arrive straight from the URL path. A string that is not a
// UUID cannot name any row, so it is a plain miss; letting it reach the
// uuid column would fail the cast and surface as a store error instead.
func validExpenseID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *ExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, description, amount, expense_date)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.Description, e.Amount.String(), e.Date.Time())

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, description, amount::text, expense_date, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY expense_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// GetOwned matches id and owner in one statement; a row that exists under a
// different owner is indistinguishable from a missing one.
func (r *ExpenseRepository) GetOwned(ctx context.Context, id, userID string) (*entity.Expense, error) {
	if !validExpenseID(id) {
		return nil, repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, description, amount::text, expense_date, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	e, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) UpdateOwned(ctx context.Context, e *entity.Expense) error {
	if !validExpenseID(e.ID) {
		return repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE expenses
		SET description = $1, amount = $2::numeric, expense_date = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at
	`, e.Description, e.Amount.String(), e.Date.Time(), e.ID, e.UserID)

	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *ExpenseRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	if !validExpenseID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `
		DELETE FROM expenses
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	e := &entity.Expense{}
	var amount string
	var date time.Time
	if err := row.Scan(&e.ID, &e.UserID, &e.Description, &amount, &date,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	e.Amount = parsed
	e.Date = entity.DateOf(date)
	return e, nil
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
