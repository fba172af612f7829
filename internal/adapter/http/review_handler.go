package http

import (
	"context"
	"net/http"

	"pet-adoption-backend/internal/adapter/middleware"
	"pet-adoption-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, cmd review.Command) (any, error)
}

// ReviewHandler turns /:id/:action admin routes into review commands.
type ReviewHandler struct{ d Dispatcher }

func NewReviewHandler(d Dispatcher) *ReviewHandler { return &ReviewHandler{d: d} }

type reviewReq struct {
	PetIDs []uint64 `json:"pet_ids"`
}

func (h *ReviewHandler) Questionnaire(c echo.Context) error { return h.handle(c, review.TargetQuestionnaire) }

func (h *ReviewHandler) Adoption(c echo.Context) error { return h.handle(c, review.TargetAdoption) }

func (h *ReviewHandler) handle(c echo.Context, target review.Target) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	action, err := review.ParseAction(c.Param("action"))
	if err != nil {
		return err
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}

	out, err := h.d.Dispatch(c.Request().Context(), review.Command{
		Target:   target,
		ID:       id,
		Action:   action,
		PetIDs:   req.PetIDs,
		Reviewer: middleware.AdminFrom(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
