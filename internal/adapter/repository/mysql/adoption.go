package mysql

import (
	"context"
	"time"

	adoptionDomain "pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/review"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdoptionRepository struct{ db *gorm.DB }

func NewAdoptionRepository(db *gorm.DB) *AdoptionRepository { return &AdoptionRepository{db: db} }

func (r *AdoptionRepository) Create(ctx context.Context, a *adoptionDomain.Request) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdoptionRepository) GetByID(ctx context.Context, requestID uint64) (*adoptionDomain.Request, error) {
	if !storableID(requestID) {
		return nil, gorm.ErrRecordNotFound
	}
	var out adoptionDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *AdoptionRepository) GetByIDForUpdate(ctx context.Context, requestID uint64) (*adoptionDomain.Request, error) {
	if !storableID(requestID) {
		return nil, gorm.ErrRecordNotFound
	}
	var out adoptionDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *AdoptionRepository) GetPendingByUsername(ctx context.Context, username string) (*adoptionDomain.Request, error) {
	var out adoptionDomain.Request
	res := r.db.WithContext(ctx).
		Where("username = ? AND status = ?", username, review.StatusPending).
		Order("request_id ASC").
		First(&out)
	return &out, res.Error
}

func (r *AdoptionRepository) ListByUsername(ctx context.Context, username string) ([]adoptionDomain.Request, error) {
	out := []adoptionDomain.Request{}
	res := r.db.WithContext(ctx).Where("username = ?", username).Order("request_id ASC").Find(&out)
	return out, res.Error
}

func (r *AdoptionRepository) List(ctx context.Context, status review.Status) ([]adoptionDomain.Request, error) {
	out := []adoptionDomain.Request{}
	q := r.db.WithContext(ctx).Order("request_id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *AdoptionRepository) TransitionStatus(ctx context.Context, requestID uint64, from, to review.Status, reviewer string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&adoptionDomain.Request{}).
		Where("request_id = ? AND status = ?", requestID, from).
		Updates(map[string]any{"status": to, "reviewed_by": reviewer, "reviewed_at": at})
	return res.RowsAffected == 1, res.Error
}
