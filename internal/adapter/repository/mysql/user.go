package mysql

import (
	"context"

	userDomain "pet-adoption-backend/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUsernameForUpdate(ctx context.Context, username string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("username = ?", username).
		First(&out)
	return &out, res.Error
}

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *userDomain.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*userDomain.Admin, error) {
	var out userDomain.Admin
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, res.Error
}
