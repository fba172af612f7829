package http

import (
	"net/http"

	domain "pet-adoption-backend/internal/domain/questionnaire"
	"pet-adoption-backend/internal/domain/review"
	"pet-adoption-backend/internal/usecase/questionnaire"

	"github.com/labstack/echo/v4"
)

type QuestionnaireHandler struct{ uc *questionnaire.Usecase }

func NewQuestionnaireHandler(uc *questionnaire.Usecase) *QuestionnaireHandler {
	return &QuestionnaireHandler{uc: uc}
}

// Per-field presence is checked by questionnaire.ValidateAnswers so the
// first missing answer is reported the same way for every caller.
type answersReq struct {
	PetType          string `json:"pet_type"`
	Size             string `json:"size"`
	LivingSpace      string `json:"living_space"` // older clients send this instead of size
	ActivityLevel    string `json:"activity_level"`
	MaintenanceLevel string `json:"maintenance_level"`
	Budget           string `json:"budget"`
}

type submitQuestionnaireReq struct {
	Username string      `json:"username" validate:"required,notblank"`
	Answers  *answersReq `json:"answers" validate:"required"`
}

func (a *answersReq) toDomain() domain.Answers {
	size := a.Size
	if size == "" {
		size = a.LivingSpace
	}
	return domain.Answers{
		PetType:          a.PetType,
		Size:             size,
		ActivityLevel:    a.ActivityLevel,
		MaintenanceLevel: a.MaintenanceLevel,
		Budget:           a.Budget,
	}
}

func (h *QuestionnaireHandler) Submit(c echo.Context) error {
	var req submitQuestionnaireReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.uc.Submit(c.Request().Context(), questionnaire.SubmitInput{
		Username: req.Username,
		Answers:  req.Answers.toDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *QuestionnaireHandler) GetByUser(c echo.Context) error {
	dto, err := h.uc.GetByUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto)
}

// List is the admin view; ?status= filters, default all.
func (h *QuestionnaireHandler) List(c echo.Context) error {
	status, err := review.ParseStatus(c.QueryParam("status"))
	if err != nil {
		return err
	}
	out, err := h.uc.ListAll(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
