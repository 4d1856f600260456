package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/internal/domain/repository"
)

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// Ensure upserts the role row by name. The conflict arm only touches
// updated_at so repeated runs converge on a single row per name.
func (r *RoleRepository) Ensure(ctx context.Context, name string) (*entity.Role, error) {
	role := &entity.Role{}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO roles (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id, name, created_at, updated_at
	`, name)
	if err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	role := &entity.Role{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM roles
		WHERE name = $1
	`, name)
	if err := row.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) Assign(ctx context.Context, userID, roleID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`, userID, roleID)
	return err
}

func (r *RoleRepository) NamesForUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

var _ repository.RoleRepository = (*RoleRepository)(nil)
