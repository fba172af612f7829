package questionnaire

import (
	"time"

	"pet-adoption-backend/internal/domain/pet"
	"pet-adoption-backend/internal/domain/review"
)

// Answers are the user's adoption preferences.
type Answers struct {
	PetType          string `gorm:"column:pet_type;size:32;not null" json:"pet_type"`
	Size             string `gorm:"column:size;size:32;not null" json:"size"`
	ActivityLevel    string `gorm:"column:activity_level;size:32;not null" json:"activity_level"`
	MaintenanceLevel string `gorm:"column:maintenance_level;size:32;not null" json:"maintenance_level"`
	Budget           string `gorm:"column:budget;size:32;not null" json:"budget"`
}

// Table: questionnaires. Latest row per username is the user's current questionnaire.
type Questionnaire struct {
	ID              uint64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username        string           `gorm:"column:username;size:64;not null;index:idx_questionnaires_username" json:"username"`
	Answers         Answers          `gorm:"embedded" json:"answers"`
	Status          review.Status    `gorm:"column:status;size:16;not null;default:PENDING;index" json:"status"`
	Recommendations []Recommendation `gorm:"foreignKey:QuestionnaireID" json:"-"`
	ReviewedBy      *string          `gorm:"column:reviewed_by;size:64" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time       `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Questionnaire) TableName() string { return "questionnaires" }

// RecommendedPets returns the referenced pets in position order.
func (q *Questionnaire) RecommendedPets() []pet.Pet {
	out := make([]pet.Pet, 0, len(q.Recommendations))
	for _, r := range q.Recommendations {
		out = append(out, r.Pet)
	}
	return out
}

// Table: questionnaire_recommendations. References pets by id only.
type Recommendation struct {
	ID              uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	QuestionnaireID uint64  `gorm:"column:questionnaire_id;not null;index"`
	PetID           uint64  `gorm:"column:pet_id;not null"`
	Position        int     `gorm:"column:position;not null"`
	Pet             pet.Pet `gorm:"foreignKey:PetID"`
}

func (Recommendation) TableName() string { return "questionnaire_recommendations" }
