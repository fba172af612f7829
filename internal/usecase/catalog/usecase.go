package catalog

import (
	"context"
	"errors"

	"pet-adoption-backend/internal/domain/apperr"
	"pet-adoption-backend/internal/domain/pet"

	"gorm.io/gorm"
)

// Usecase serves the read-only pet catalog.
type Usecase struct{ repo pet.Repository }

func NewUsecase(r pet.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context) ([]pet.Pet, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*pet.Pet, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("pet not found")
		}
		return nil, err
	}
	return p, nil
}
