package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mindfuly/mindfuly/internal/domain/entity"
	"github.com/mindfuly/mindfuly/internal/domain/repository"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

// UserRepository keeps accounts in memory behind a mutex. It backs tests and
// local development when no Postgres is available; ids auto-increment and are
// never reused, matching the durable implementation.
type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, byName: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(ctx context.Context, name, email, password string, tier int) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if tier == 0 {
		tier = entity.DefaultTier
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; ok {
		return nil, repository.ErrUserExists
	}
	u := &entity.User{
		ID:             r.nextID,
		Name:           name,
		Email:          email,
		HashedPassword: hash,
		Tier:           tier,
		CreatedAt:      time.Now().UTC(),
	}
	r.nextID++
	r.byName[name] = u
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[name]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.byName))
	for _, u := range r.byName {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, u := range r.byName {
		if u.ID == id {
			delete(r.byName, name)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (r *UserRepository) DeleteByName(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.byName, name)
	return nil
}

func (r *UserRepository) SetAvatarURL(ctx context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == id {
			u.AvatarURL = url
			return nil
		}
	}
	return repository.ErrUserNotFound
}

var _ repository.UserRepository = (*UserRepository)(nil)
