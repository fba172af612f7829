package adoption

import "time"

type RequestInput struct {
	Username string
	PetID    uint64
}

type ReviewInput struct {
	RequestID uint64
	Reviewer  string
}

type RequestDTO struct {
	RequestID  uint64     `json:"request_id"`
	Username   string     `json:"username"`
	PetID      uint64     `json:"pet_id"`
	PetName    string     `json:"pet_name"`
	Status     string     `json:"status"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
