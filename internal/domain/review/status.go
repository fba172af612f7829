package review

import (
	"strings"

	"pet-adoption-backend/internal/domain/apperr"
)

// Status is the lifecycle shared by questionnaires and adoption requests.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus accepts any casing; empty input yields "" with no error (no filter).
func ParseStatus(raw string) (Status, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return "", nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", apperr.InvalidInput("status must be one of PENDING, APPROVED, REJECTED")
	}
	return s, nil
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Next returns the status reached by applying a to s.
// Only PENDING entities may transition; anything else is ErrInvalidState.
func (s Status) Next(a Action) (Status, error) {
	if s != StatusPending {
		return s, apperr.InvalidState("cannot %s: status is %s", a, s)
	}
	switch a {
	case ActionApprove:
		return StatusApproved, nil
	case ActionReject:
		return StatusRejected, nil
	}
	return s, apperr.InvalidInput("unknown action %q", a)
}
