package questionnaire

import (
	"time"

	"pet-adoption-backend/internal/domain/pet"
	domain "pet-adoption-backend/internal/domain/questionnaire"
)

type SubmitInput struct {
	Username string
	Answers  domain.Answers
}

type SubmitResult struct {
	ID      uint64 `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ApproveInput struct {
	ID       uint64
	PetIDs   []uint64 // exactly one
	Reviewer string
}

type RejectInput struct {
	ID       uint64
	Reviewer string
}

type QuestionnaireDTO struct {
	ID              uint64         `json:"id"`
	Username        string         `json:"username"`
	Status          string         `json:"status"`
	Message         string         `json:"message,omitempty"`
	Answers         domain.Answers `json:"answers"`
	Recommendations []pet.Pet      `json:"recommendations"`
	ReviewedBy      *string        `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
