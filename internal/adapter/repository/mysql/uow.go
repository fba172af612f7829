package mysql

import (
	"context"

	"pet-adoption-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// NewRepos binds every repository to db (a plain handle or a tx).
func NewRepos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:          &UserRepository{db: db},
		Admins:         &AdminRepository{db: db},
		Pets:           &PetRepository{db: db},
		Questionnaires: &QuestionnaireRepository{db: db},
		Adoptions:      &AdoptionRepository{db: db},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}
