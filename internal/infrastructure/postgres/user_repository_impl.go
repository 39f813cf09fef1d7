package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
	"github.com/mindfuly/mindfuly/internal/domain/repository"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

const uniqueViolation = "23505"

// UserRepository is the pgxpool-backed implementation. Name uniqueness is
// enforced by the users_name_key constraint, so concurrent duplicate creates
// resolve to exactly one success.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, name, email, password string, tier int) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if tier == 0 {
		tier = entity.DefaultTier
	}

	u := &entity.User{Name: name, Email: email, HashedPassword: hash, Tier: tier}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, hashed_password, tier)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, name, email, hash, tier)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, hashed_password, tier, avatar_url, created_at
		FROM users
		WHERE name = $1
	`, name)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, hashed_password, tier, avatar_url, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.Tier,
		&u.AvatarURL, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, hashed_password, tier, avatar_url, created_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.HashedPassword, &u.Tier,
			&u.AvatarURL, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return out, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.deleteWhere(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *UserRepository) DeleteByName(ctx context.Context, name string) error {
	return r.deleteWhere(ctx, `DELETE FROM users WHERE name = $1`, name)
}

func (r *UserRepository) deleteWhere(ctx context.Context, query string, arg any) error {
	res, err := r.pool.Exec(ctx, query, arg)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetAvatarURL(ctx context.Context, id int64, url string) error {
	res, err := r.pool.Exec(ctx, `UPDATE users SET avatar_url = $1 WHERE id = $2`, url, id)
	if err != nil {
		return fmt.Errorf("update avatar: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
