package adoption

import (
	"context"
	"time"

	"pet-adoption-backend/internal/domain/review"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, requestID uint64) (*Request, error)
	GetByIDForUpdate(ctx context.Context, requestID uint64) (*Request, error)
	// Oldest PENDING request of the user
	GetPendingByUsername(ctx context.Context, username string) (*Request, error)
	ListByUsername(ctx context.Context, username string) ([]Request, error)
	List(ctx context.Context, status review.Status) ([]Request, error)
	TransitionStatus(ctx context.Context, requestID uint64, from, to review.Status, reviewer string, at time.Time) (bool, error)
}
