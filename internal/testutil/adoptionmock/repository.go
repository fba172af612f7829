package adoptionmock

import (
	"context"
	"time"

	domain "pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/review"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock of adoption.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, r *domain.Request) error
	GetByIDFn              func(ctx context.Context, requestID uint64) (*domain.Request, error)
	GetByIDForUpdateFn     func(ctx context.Context, requestID uint64) (*domain.Request, error)
	GetPendingByUsernameFn func(ctx context.Context, username string) (*domain.Request, error)
	ListByUsernameFn       func(ctx context.Context, username string) ([]domain.Request, error)
	ListFn                 func(ctx context.Context, status review.Status) ([]domain.Request, error)
	TransitionStatusFn     func(ctx context.Context, requestID uint64, from, to review.Status, reviewer string, at time.Time) (bool, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, requestID uint64) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, requestID uint64) (*domain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, requestID)
	}
	return m.GetByID(ctx, requestID)
}

func (m *Repo) GetPendingByUsername(ctx context.Context, username string) (*domain.Request, error) {
	if m.GetPendingByUsernameFn != nil {
		return m.GetPendingByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByUsername(ctx context.Context, username string) ([]domain.Request, error) {
	if m.ListByUsernameFn != nil {
		return m.ListByUsernameFn(ctx, username)
	}
	return []domain.Request{}, nil
}

func (m *Repo) List(ctx context.Context, status review.Status) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return []domain.Request{}, nil
}

func (m *Repo) TransitionStatus(ctx context.Context, requestID uint64, from, to review.Status, reviewer string, at time.Time) (bool, error) {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, requestID, from, to, reviewer, at)
	}
	return true, nil
}
