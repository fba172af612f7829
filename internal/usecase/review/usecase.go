package review

import (
	"context"
	"fmt"

	"pet-adoption-backend/internal/domain/apperr"
	domain "pet-adoption-backend/internal/domain/review"
	"pet-adoption-backend/internal/usecase/adoption"
	"pet-adoption-backend/internal/usecase/questionnaire"

	"go.uber.org/zap"
)

type QuestionnaireWorkflow interface {
	Approve(ctx context.Context, in questionnaire.ApproveInput) (*questionnaire.QuestionnaireDTO, error)
	Reject(ctx context.Context, in questionnaire.RejectInput) (*questionnaire.QuestionnaireDTO, error)
}

type AdoptionWorkflow interface {
	Approve(ctx context.Context, in adoption.ReviewInput) (*adoption.RequestDTO, error)
	Reject(ctx context.Context, in adoption.ReviewInput) (*adoption.RequestDTO, error)
}

type handlerFunc func(ctx context.Context, cmd Command) (any, error)

type dispatchKey struct {
	target Target
	action domain.Action
}

// Usecase is the admin review surface: every approve/reject goes through Dispatch.
type Usecase struct {
	table map[dispatchKey]handlerFunc
	log   *zap.Logger
}

func NewUsecase(q QuestionnaireWorkflow, a AdoptionWorkflow, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	u := &Usecase{log: log}
	u.table = map[dispatchKey]handlerFunc{
		{TargetQuestionnaire, domain.ActionApprove}: func(ctx context.Context, c Command) (any, error) {
			return q.Approve(ctx, questionnaire.ApproveInput{ID: c.ID, PetIDs: c.PetIDs, Reviewer: c.Reviewer})
		},
		{TargetQuestionnaire, domain.ActionReject}: func(ctx context.Context, c Command) (any, error) {
			return q.Reject(ctx, questionnaire.RejectInput{ID: c.ID, Reviewer: c.Reviewer})
		},
		{TargetAdoption, domain.ActionApprove}: func(ctx context.Context, c Command) (any, error) {
			return a.Approve(ctx, adoption.ReviewInput{RequestID: c.ID, Reviewer: c.Reviewer})
		},
		{TargetAdoption, domain.ActionReject}: func(ctx context.Context, c Command) (any, error) {
			return a.Reject(ctx, adoption.ReviewInput{RequestID: c.ID, Reviewer: c.Reviewer})
		},
	}
	return u
}

func (u *Usecase) Dispatch(ctx context.Context, cmd Command) (any, error) {
	h, ok := u.table[dispatchKey{cmd.Target, cmd.Action}]
	if !ok {
		return nil, apperr.InvalidInput("unsupported review command %s/%s", cmd.Target, cmd.Action)
	}
	if cmd.ID == 0 {
		return nil, apperr.InvalidInput("%s id is required", cmd.Target)
	}
	if cmd.Reviewer == "" {
		return nil, apperr.Unauthorized("admin identity required")
	}

	out, err := h(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("%s %s %d: %w", cmd.Action, cmd.Target, cmd.ID, err)
	}
	u.log.Info("review applied",
		zap.String("target", cmd.Target.String()),
		zap.Uint64("id", cmd.ID),
		zap.String("action", string(cmd.Action)),
		zap.String("reviewer", cmd.Reviewer),
	)
	return out, nil
}
