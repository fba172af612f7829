package questionnairemock

import (
	"context"
	"time"

	domain "pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/review"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock of questionnaire.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, q *domain.Questionnaire) error
	UpdateAnswersFn       func(ctx context.Context, id uint64, a domain.Answers) (bool, error)
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Questionnaire, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Questionnaire, error)
	GetLatestByUsernameFn func(ctx context.Context, username string) (*domain.Questionnaire, error)
	ListFn                func(ctx context.Context, status review.Status) ([]domain.Questionnaire, error)
	TransitionStatusFn    func(ctx context.Context, id uint64, from, to review.Status, reviewer string, at time.Time) (bool, error)
	AddRecommendationsFn  func(ctx context.Context, recs []domain.Recommendation) error
}

func (m *Repo) Create(ctx context.Context, q *domain.Questionnaire) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) UpdateAnswers(ctx context.Context, id uint64, a domain.Answers) (bool, error) {
	if m.UpdateAnswersFn != nil {
		return m.UpdateAnswersFn(ctx, id, a)
	}
	return false, nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Questionnaire, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Questionnaire, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *Repo) GetLatestByUsername(ctx context.Context, username string) (*domain.Questionnaire, error) {
	if m.GetLatestByUsernameFn != nil {
		return m.GetLatestByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, status review.Status) ([]domain.Questionnaire, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return []domain.Questionnaire{}, nil
}

func (m *Repo) TransitionStatus(ctx context.Context, id uint64, from, to review.Status, reviewer string, at time.Time) (bool, error) {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, id, from, to, reviewer, at)
	}
	return true, nil
}

func (m *Repo) AddRecommendations(ctx context.Context, recs []domain.Recommendation) error {
	if m.AddRecommendationsFn != nil {
		return m.AddRecommendationsFn(ctx, recs)
	}
	return nil
}
