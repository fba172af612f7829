package adoption

import (
	"time"

	"pet-adoption-backend/internal/domain/review"
)

// Table: adoption_requests
type Request struct {
	RequestID uint64 `gorm:"column:request_id;primaryKey;autoIncrement" json:"request_id"`
	Username  string `gorm:"column:username;size:64;not null;index:idx_adoptions_username_status" json:"username"`
	PetID     uint64 `gorm:"column:pet_id;not null;index" json:"pet_id"`
	// Copied from the catalog at creation time; may go stale if the pet is renamed.
	PetName    string        `gorm:"column:pet_name;size:64;not null" json:"pet_name"`
	Status     review.Status `gorm:"column:status;size:16;not null;default:PENDING;index:idx_adoptions_username_status" json:"status"`
	ReviewedBy *string       `gorm:"column:reviewed_by;size:64" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time    `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string { return "adoption_requests" }
