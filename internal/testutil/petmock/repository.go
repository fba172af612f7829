package petmock

import (
	"context"

	domain "pet-adoption-backend/internal/domain/pet"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock of pet.Repository.
type Repo struct {
	ListFn    func(ctx context.Context) ([]domain.Pet, error)
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Pet, error)
}

// Static returns a Repo serving a fixed catalog.
func Static(pets ...domain.Pet) *Repo {
	return &Repo{
		ListFn: func(context.Context) ([]domain.Pet, error) { return pets, nil },
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Pet, error) {
			for _, p := range pets {
				if p.ID == id {
					p := p
					return &p, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func (m *Repo) List(ctx context.Context) ([]domain.Pet, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Pet{}, nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Pet, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
