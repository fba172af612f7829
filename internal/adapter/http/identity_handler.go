package http

import (
	"net/http"

	"pet-adoption-backend/internal/usecase/identity"

	"github.com/labstack/echo/v4"
)

type IdentityHandler struct{ uc *identity.Usecase }

func NewIdentityHandler(uc *identity.Usecase) *IdentityHandler { return &IdentityHandler{uc: uc} }

type credentialsReq struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Password string `json:"password" validate:"required"`
}

func (h *IdentityHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dto, err := h.uc.Register(c.Request().Context(), identity.CredentialsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "User registered successfully", "user": dto})
}

func (h *IdentityHandler) Login(c echo.Context) error {
	var req credentialsReq
	// shape errors on login are credential failures, not field errors
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	dto, err := h.uc.Login(c.Request().Context(), identity.CredentialsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Login successful", "user": dto})
}

func (h *IdentityHandler) AdminLogin(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return errBadBody
	}
	dto, err := h.uc.AdminLogin(c.Request().Context(), identity.CredentialsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Admin login successful", "admin": dto})
}
