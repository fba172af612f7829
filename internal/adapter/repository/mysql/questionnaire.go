package mysql

import (
	"context"
	"time"

	qDomain "pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/review"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionnaireRepository struct{ db *gorm.DB }

func NewQuestionnaireRepository(db *gorm.DB) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db}
}

// withRecommendations preloads recommendations in position order, each with its pet.
func withRecommendations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Recommendations", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Recommendations.Pet")
}

func (r *QuestionnaireRepository) Create(ctx context.Context, q *qDomain.Questionnaire) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(q).Error
}

func (r *QuestionnaireRepository) UpdateAnswers(ctx context.Context, id uint64, a qDomain.Answers) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&qDomain.Questionnaire{}).
		Where("id = ? AND status = ?", id, review.StatusPending).
		Updates(map[string]any{
			"pet_type":          a.PetType,
			"size":              a.Size,
			"activity_level":    a.ActivityLevel,
			"maintenance_level": a.MaintenanceLevel,
			"budget":            a.Budget,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *QuestionnaireRepository) GetByID(ctx context.Context, id uint64) (*qDomain.Questionnaire, error) {
	if !storableID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var out qDomain.Questionnaire
	res := withRecommendations(r.db.WithContext(ctx)).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *QuestionnaireRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*qDomain.Questionnaire, error) {
	if !storableID(id) {
		return nil, gorm.ErrRecordNotFound
	}
	var out qDomain.Questionnaire
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *QuestionnaireRepository) GetLatestByUsername(ctx context.Context, username string) (*qDomain.Questionnaire, error) {
	var out qDomain.Questionnaire
	res := withRecommendations(r.db.WithContext(ctx)).
		Where("username = ?", username).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *QuestionnaireRepository) List(ctx context.Context, status review.Status) ([]qDomain.Questionnaire, error) {
	out := []qDomain.Questionnaire{}
	q := withRecommendations(r.db.WithContext(ctx)).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *QuestionnaireRepository) TransitionStatus(ctx context.Context, id uint64, from, to review.Status, reviewer string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&qDomain.Questionnaire{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "reviewed_by": reviewer, "reviewed_at": at})
	return res.RowsAffected == 1, res.Error
}

func (r *QuestionnaireRepository) AddRecommendations(ctx context.Context, recs []qDomain.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&recs).Error
}
