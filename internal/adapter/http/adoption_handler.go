package http

import (
	"net/http"

	"pet-adoption-backend/internal/domain/review"
	"pet-adoption-backend/internal/usecase/adoption"

	"github.com/labstack/echo/v4"
)

type AdoptionHandler struct{ uc *adoption.Usecase }

func NewAdoptionHandler(uc *adoption.Usecase) *AdoptionHandler { return &AdoptionHandler{uc: uc} }

type requestAdoptionReq struct {
	PetID    uint64 `json:"pet_id" validate:"required"`
	Username string `json:"username"`
}

func (h *AdoptionHandler) Request(c echo.Context) error {
	var req requestAdoptionReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Request(c.Request().Context(), adoption.RequestInput{Username: req.Username, PetID: req.PetID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdoptionHandler) ListByUser(c echo.Context) error {
	out, err := h.uc.ListByUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdoptionHandler) List(c echo.Context) error {
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
