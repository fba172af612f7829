package review

import (
	"strings"

	"pet-adoption-backend/internal/domain/apperr"
	domain "pet-adoption-backend/internal/domain/review"
)

// Target selects which workflow a Command is routed to.
type Target int

const (
	TargetQuestionnaire Target = iota + 1
	TargetAdoption
)

func (t Target) String() string {
	switch t {
	case TargetQuestionnaire:
		return "questionnaire"
	case TargetAdoption:
		return "adoption"
	}
	return "unknown"
}

// Command is one admin decision.
type Command struct {
	Target   Target
	ID       uint64
	Action   domain.Action
	PetIDs   []uint64 // questionnaire approval only
	Reviewer string
}

func ParseAction(raw string) (domain.Action, error) {
	switch a := domain.Action(strings.ToLower(strings.TrimSpace(raw))); a {
	case domain.ActionApprove, domain.ActionReject:
		return a, nil
	}
	return "", apperr.InvalidInput("action must be approve or reject")
}
