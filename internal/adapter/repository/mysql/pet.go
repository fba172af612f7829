package mysql

import (
	"context"

	petDomain "pet-adoption-backend/internal/domain/pet"

	"gorm.io/gorm"
)

type PetRepository struct{ db *gorm.DB }

func NewPetRepository(db *gorm.DB) *PetRepository { return &PetRepository{db: db} }

func (r *PetRepository) List(ctx context.Context) ([]petDomain.Pet, error) {
	out := []petDomain.Pet{}
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *PetRepository) GetByID(ctx context.Context, id uint64) (*petDomain.Pet, error) {
	if !storableID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var out petDomain.Pet
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}
