package user

import "context"

type Repository interface {
	// Create fails on duplicate username (unique index)
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Row lock; serializes per-user writes inside a tx
	GetByUsernameForUpdate(ctx context.Context, username string) (*User, error)
}

type AdminRepository interface {
	Create(ctx context.Context, a *Admin) error
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}
