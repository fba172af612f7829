package questionnaire

import (
	"context"
	"time"

	"pet-adoption-backend/internal/domain/review"
)

type Repository interface {
	Create(ctx context.Context, q *Questionnaire) error
	// UpdateAnswers rewrites answers of a questionnaire that is still PENDING
	UpdateAnswers(ctx context.Context, id uint64, a Answers) (bool, error)
	GetByID(ctx context.Context, id uint64) (*Questionnaire, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Questionnaire, error)
	GetLatestByUsername(ctx context.Context, username string) (*Questionnaire, error)
	// List filters by status when non-empty; ordered by id
	List(ctx context.Context, status review.Status) ([]Questionnaire, error)
	// TransitionStatus is a compare-and-set on status; false means the row was not in `from`
	TransitionStatus(ctx context.Context, id uint64, from, to review.Status, reviewer string, at time.Time) (bool, error)
	AddRecommendations(ctx context.Context, recs []Recommendation) error
}
