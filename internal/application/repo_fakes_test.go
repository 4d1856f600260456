package application

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type memUserRepo struct {
	seq   int
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) add(username, email string) *entity.User {
	r.seq++
	u := &entity.User{
		ID:        fmt.Sprintf("user-%d", r.seq),
		Username:  username,
		Email:     email,
		Password:  "$2a$10$fakehash",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.users[u.ID] = u
	return u
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memRoleRepo struct {
	seq      int
	roles    map[string]*entity.Role // by name
	assigned map[string][]string     // userID -> role names
}

func newMemRoleRepo() *memRoleRepo {
	r := &memRoleRepo{roles: map[string]*entity.Role{}, assigned: map[string][]string{}}
	r.mustEnsure(entity.RoleUser)
	r.mustEnsure(entity.RoleAdmin)
	return r
}

func (r *memRoleRepo) mustEnsure(name string) {
	if _, err := r.Ensure(context.Background(), name); err != nil {
		panic(err)
	}
}

func (r *memRoleRepo) Ensure(_ context.Context, name string) (*entity.Role, error) {
	if role, ok := r.roles[name]; ok {
		copied := *role
		return &copied, nil
	}
	r.seq++
	role := &entity.Role{ID: fmt.Sprintf("role-%d", r.seq), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	r.roles[name] = role
	copied := *role
	return &copied, nil
}

func (r *memRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	if role, ok := r.roles[name]; ok {
		copied := *role
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memRoleRepo) Assign(_ context.Context, userID, roleID string) error {
	for name, role := range r.roles {
		if role.ID == roleID {
			for _, existing := range r.assigned[userID] {
				if existing == name {
					return nil
				}
			}
			r.assigned[userID] = append(r.assigned[userID], name)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memRoleRepo) NamesForUser(_ context.Context, userID string) ([]string, error) {
	return append([]string(nil), r.assigned[userID]...), nil
}

type memExpenseRepo struct {
	seq      int
	expenses map[string]*entity.Expense
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{expenses: map[string]*entity.Expense{}}
}

func (r *memExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.seq++
	e.ID = fmt.Sprintf("exp-%d", r.seq)
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	stored := *e
	r.expenses[e.ID] = &stored
	return nil
}

func (r *memExpenseRepo) ListByOwner(_ context.Context, userID string) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0)
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memExpenseRepo) GetOwned(_ context.Context, id, userID string) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *memExpenseRepo) UpdateOwned(_ context.Context, e *entity.Expense) error {
	stored, ok := r.expenses[e.ID]
	if !ok || stored.UserID != e.UserID {
		return repository.ErrNotFound
	}
	stored.Description = e.Description
	stored.Amount = e.Amount
	stored.Date = e.Date
	stored.UpdatedAt = time.Now()
	e.CreatedAt = stored.CreatedAt
	e.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memExpenseRepo) DeleteOwned(_ context.Context, id, userID string) error {
	e, ok := r.expenses[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.expenses, id)
	return nil
}
