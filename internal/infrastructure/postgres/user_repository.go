package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/policy"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port on PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the user persistence adapter.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persists a new user.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, role, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Role,
		nullableID(user.CreatedBy), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return domain.Duplicate("Username already exists")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID, nil when missing.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`WHERE id = $1`, id)
}

// GetByUsername fetches a user by username, nil when missing.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`WHERE username = $1`, username)
}

func (r *UserRepo) getOne(where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, role, created_by, created_at
		FROM users ` + where
	row := r.pool.QueryRow(context.Background(), query, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// CountByRole counts users with the given role.
func (r *UserRepo) CountByRole(role string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// List returns users matching the scope, newest first.
func (r *UserRepo) List(scope policy.UserScope) ([]*entity.User, error) {
	query := `
		SELECT id, username, password_hash, role, created_by, created_at
		FROM users`
	var args []any
	if scope.Role != "" {
		args = append(args, scope.Role, scope.CreatedBy)
		query += ` WHERE role = $1 AND created_by = $2`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete removes a user by ID and reports whether a row was deleted.
func (r *UserRepo) Delete(id string) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var createdBy *string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &createdBy, &u.CreatedAt); err != nil {
		return nil, err
	}
	if createdBy != nil {
		u.CreatedBy = *createdBy
	}
	return &u, nil
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
