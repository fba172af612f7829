package http

import (
	"net/http"

	"pet-adoption-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type PetHandler struct{ uc *catalog.Usecase }

func NewPetHandler(uc *catalog.Usecase) *PetHandler { return &PetHandler{uc: uc} }

func (h *PetHandler) List(c echo.Context) error {
	pets, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
