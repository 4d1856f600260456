package application

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/fintrack/expense-service/internal/domain/entity"
	repo "github.com/fintrack/expense-service/internal/domain/repository"
)

// ExpenseService implements owner-scoped expense CRUD. Every operation takes
// the principal id resolved by the auth middleware, maps it to a user row,
// and touches only rows owned by that user.
type ExpenseService struct {
	Users    repo.UserRepository
	Expenses repo.ExpenseRepository
	Logger   *logrus.Logger
}

func NewExpenseService(users repo.UserRepository, expenses repo.ExpenseRepository, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{Users: users, Expenses: expenses, Logger: logger}
}

// ExpenseInput carries the mutable fields of an expense. The owner is never
// part of the input.
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        entity.Date
}

func (in ExpenseInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "is required"
	}
	if in.Amount.Sign() <= 0 {
		fields["amount"] = "must be positive"
	}
	if in.Date.IsZero() {
		fields["date"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// currentUser maps the authenticated principal id to its user row.
func (s *ExpenseService) currentUser(ctx context.Context, principalID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			if s.Logger != nil {
				s.Logger.WithField("principal_id", principalID).
					Error("authenticated principal has no user row")
			}
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *ExpenseService) List(ctx context.Context, principalID string) ([]entity.Expense, error) {
	u, err := s.currentUser(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return s.Expenses.ListByOwner(ctx, u.ID)
}

func (s *ExpenseService) Get(ctx context.Context, principalID, id string) (*entity.Expense, error) {
	u, err := s.currentUser(ctx, principalID)
	if err != nil {
		return nil, err
	}
	e, err := s.Expenses.GetOwned(ctx, id, u.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Create(ctx context.Context, principalID string, in ExpenseInput) (*entity.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	u, err := s.currentUser(ctx, principalID)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		UserID:      u.ID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
	}
	if err := s.Expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces the mutable fields of a caller-owned expense in one
// statement. Last write wins; the owner column is untouched.
func (s *ExpenseService) Update(ctx context.Context, principalID, id string, in ExpenseInput) (*entity.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	u, err := s.currentUser(ctx, principalID)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		ID:          id,
		UserID:      u.ID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
	}
	if err := s.Expenses.UpdateOwned(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, principalID, id string) error {
	u, err := s.currentUser(ctx, principalID)
	if err != nil {
		return err
	}
	if err := s.Expenses.DeleteOwned(ctx, id, u.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}
