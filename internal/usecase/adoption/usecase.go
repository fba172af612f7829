package adoption

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "pet-adoption-backend/internal/domain/adoption"
	"pet-adoption-backend/internal/domain/apperr"
	"pet-adoption-backend/internal/domain/review"
	"pet-adoption-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx, now: time.Now}
}

func toDTO(a *domain.Request) *RequestDTO {
	return &RequestDTO{
		RequestID:  a.RequestID,
		Username:   a.Username,
		PetID:      a.PetID,
		PetName:    a.PetName,
		Status:     string(a.Status),
		ReviewedBy: a.ReviewedBy,
		ReviewedAt: a.ReviewedAt,
		CreatedAt:  a.CreatedAt,
	}
}

func toDTOs(in []domain.Request) []RequestDTO {
	out := make([]RequestDTO, 0, len(in))
	for i := range in {
		out = append(out, *toDTO(&in[i]))
	}
	return out
}

// Request opens a PENDING adoption request. A user holds at most one PENDING request.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*RequestDTO, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, apperr.Unauthorized("username is required")
	}
	if in.PetID == 0 {
		return nil, apperr.InvalidInput("pet_id is required")
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock user row: two concurrent requests from one user cannot both pass the pending check
		if _, err := r.Users.GetByUsernameForUpdate(ctx, in.Username); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Unauthorized("unknown user")
			}
			return err
		}

		p, err := r.Pets.GetByID(ctx, in.PetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("pet not found")
			}
			return err
		}

		pending, err := r.Adoptions.GetPendingByUsername(ctx, in.Username)
		switch {
		case err == nil:
			return apperr.Conflict("user already has a pending adoption request (request_id=%d)", pending.RequestID)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		a := &domain.Request{
			Username: in.Username,
			PetID:    p.ID,
			PetName:  p.Name,
			Status:   review.StatusPending,
		}
		if err := r.Adoptions.Create(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListByUser(ctx context.Context, username string) ([]RequestDTO, error) {
	rs, err := u.repo.ListByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

// ListAll is the admin view; an empty status means every status.
func (u *Usecase) ListAll(ctx context.Context, status review.Status) ([]RequestDTO, error) {
	rs, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) Approve(ctx context.Context, in ReviewInput) (*RequestDTO, error) {
	return u.transition(ctx, in, review.ActionApprove)
}

func (u *Usecase) Reject(ctx context.Context, in ReviewInput) (*RequestDTO, error) {
	return u.transition(ctx, in, review.ActionReject)
}

func (u *Usecase) transition(ctx context.Context, in ReviewInput, action review.Action) (*RequestDTO, error) {
	if u.uow == nil {
		return nil, errors.New("adoption: unit of work not configured")
	}
	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Adoptions.GetByIDForUpdate(ctx, in.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("adoption request not found")
			}
			return err
		}
		next, err := a.Status.Next(action)
		if err != nil {
			return err
		}

		now := u.now().UTC()
		ok, err := r.Adoptions.TransitionStatus(ctx, a.RequestID, review.StatusPending, next, in.Reviewer, now)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("adoption request was already reviewed")
		}

		a.Status = next
		a.ReviewedBy = &in.Reviewer
		a.ReviewedAt = &now
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
