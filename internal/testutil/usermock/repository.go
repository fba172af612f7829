package usermock

import (
	"context"

	domain "pet-adoption-backend/internal/domain/user"

	"gorm.io/gorm"
)

var (
	_ domain.Repository      = (*Repo)(nil)
	_ domain.AdminRepository = (*AdminRepo)(nil)
)

// Repo is a function-backed mock of user.Repository.
// Unset lookups report gorm.ErrRecordNotFound.
type Repo struct {
	CreateFn                 func(ctx context.Context, u *domain.User) error
	GetByUsernameFn          func(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameForUpdateFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUsernameForUpdate(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameForUpdateFn != nil {
		return m.GetByUsernameForUpdateFn(ctx, username)
	}
	return m.GetByUsername(ctx, username)
}

type AdminRepo struct {
	CreateFn        func(ctx context.Context, a *domain.Admin) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.Admin, error)
}

func (m *AdminRepo) Create(ctx context.Context, a *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *AdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}
