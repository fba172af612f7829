package questionnaire

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoption-backend/internal/domain/apperr"
	domain "pet-adoption-backend/internal/domain/questionnaire"
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

// ValidateAnswers trims and lowercases every answer and reports the first missing one
// in the order pet_type, size, activity_level, maintenance_level, budget.
func ValidateAnswers(a domain.Answers) (domain.Answers, error) {
	fields := []struct {
		name string
		v    *string
	}{
		{"pet_type", &a.PetType},
		{"size", &a.Size},
		{"activity_level", &a.ActivityLevel},
		{"maintenance_level", &a.MaintenanceLevel},
		{"budget", &a.Budget},
	}
	for _, f := range fields {
		*f.v = strings.ToLower(strings.TrimSpace(*f.v))
		if *f.v == "" {
			return a, apperr.InvalidInput("answers.%s is required", f.name)
		}
	}
	return a, nil
}

func statusMessage(s review.Status) string {
	switch s {
	case review.StatusPending:
		return "Questionnaire is pending admin approval"
	case review.StatusApproved:
		return "Questionnaire was approved"
	case review.StatusRejected:
		return "Questionnaire was rejected by admin"
	}
	return ""
}

func toDTO(q *domain.Questionnaire) *QuestionnaireDTO {
	return &QuestionnaireDTO{
		ID:              q.ID,
		Username:        q.Username,
		Status:          string(q.Status),
		Message:         statusMessage(q.Status),
		Answers:         q.Answers,
		Recommendations: q.RecommendedPets(),
		ReviewedBy:      q.ReviewedBy,
		ReviewedAt:      q.ReviewedAt,
		CreatedAt:       q.CreatedAt,
	}
}

// Submit stores answers as the user's current questionnaire. A still-PENDING questionnaire
// has its answers replaced; after a terminal review a new one is appended.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, apperr.InvalidInput("username is required")
	}
	answers, err := ValidateAnswers(in.Answers)
	if err != nil {
		return nil, err
	}

	var out *SubmitResult
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// user row lock serializes submissions of the same user
		if _, err := r.Users.GetByUsernameForUpdate(ctx, in.Username); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Unauthorized("unknown user")
			}
			return err
		}

		cur, err := r.Questionnaires.GetLatestByUsername(ctx, in.Username)
		switch {
		case err == nil && cur.Status == review.StatusPending:
			ok, err := r.Questionnaires.UpdateAnswers(ctx, cur.ID, answers)
			if err != nil {
				return err
			}
			if ok {
				out = &SubmitResult{ID: cur.ID, Status: string(review.StatusPending), Message: "Questionnaire updated and pending admin approval"}
				return nil
			}
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		q := &domain.Questionnaire{
			Username: in.Username,
			Answers:  answers,
			Status:   review.StatusPending,
		}
		if err := r.Questionnaires.Create(ctx, q); err != nil {
			return err
		}
		out = &SubmitResult{ID: q.ID, Status: string(q.Status), Message: "Questionnaire submitted and pending admin approval"}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) GetByUser(ctx context.Context, username string) (*QuestionnaireDTO, error) {
	q, err := u.repo.GetLatestByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no questionnaire found for user")
		}
		return nil, err
	}
	return toDTO(q), nil
}

// ListAll is the admin view; an empty status means every status.
func (u *Usecase) ListAll(ctx context.Context, status review.Status) ([]QuestionnaireDTO, error) {
	qs, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]QuestionnaireDTO, 0, len(qs))
	for i := range qs {
		out = append(out, *toDTO(&qs[i]))
	}
	return out, nil
}

func (u *Usecase) ListPending(ctx context.Context) ([]QuestionnaireDTO, error) {
	return u.ListAll(ctx, review.StatusPending)
}

func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*QuestionnaireDTO, error) {
	if len(in.PetIDs) != 1 || in.PetIDs[0] == 0 {
		return nil, apperr.InvalidInput("pet_ids must contain exactly one pet id")
	}
	petID := in.PetIDs[0]

	return u.transition(ctx, in.ID, review.ActionApprove, in.Reviewer, func(r uow.Repos, q *domain.Questionnaire) error {
		if _, err := r.Pets.GetByID(ctx, petID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.InvalidInput("pet %d does not exist", petID)
			}
			return err
		}
		return nil
	}, func(r uow.Repos, q *domain.Questionnaire) error {
		return r.Questionnaires.AddRecommendations(ctx, []domain.Recommendation{
			{QuestionnaireID: q.ID, PetID: petID, Position: 0},
		})
	})
}

func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*QuestionnaireDTO, error) {
	return u.transition(ctx, in.ID, review.ActionReject, in.Reviewer, nil, nil)
}

type txStep func(r uow.Repos, q *domain.Questionnaire) error

// transition locks the questionnaire, checks the state machine, runs precheck,
// flips status with a compare-and-set, then runs after. All in one tx.
func (u *Usecase) transition(ctx context.Context, id uint64, action review.Action, reviewer string, precheck, after txStep) (*QuestionnaireDTO, error) {
	if u.uow == nil {
		return nil, errors.New("questionnaire: unit of work not configured")
	}
	var dto *QuestionnaireDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		q, err := r.Questionnaires.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("questionnaire not found")
			}
			return err
		}
		next, err := q.Status.Next(action)
		if err != nil {
			return err
		}
		if precheck != nil {
			if err := precheck(r, q); err != nil {
				return err
			}
		}

		ok, err := r.Questionnaires.TransitionStatus(ctx, q.ID, review.StatusPending, next, reviewer, u.now().UTC())
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("questionnaire was already reviewed")
		}
		if after != nil {
			if err := after(r, q); err != nil {
				return err
			}
		}

		fresh, err := r.Questionnaires.GetByID(ctx, q.ID)
		if err != nil {
			return err
		}
		dto = toDTO(fresh)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
