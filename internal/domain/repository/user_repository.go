package repository

import (
	"context"
	"errors"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
)

// Expected outcomes, checked with errors.Is at the API boundary.
// Anything else returned by an implementation is a persistence fault.
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository owns the collection of user accounts and is its sole mutator.
// Create hashes the password before storing; lookups never expose plaintext.
type UserRepository interface {
	Create(ctx context.Context, name, email, password string, tier int) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetAll(ctx context.Context) ([]*entity.User, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByName(ctx context.Context, name string) error
	SetAvatarURL(ctx context.Context, id int64, url string) error
}
