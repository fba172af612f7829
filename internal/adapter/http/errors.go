package http

import (
	"errors"
	"net/http"

	"pet-adoption-backend/internal/domain/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errBadBody = apperr.InvalidInput("invalid body")

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInvalidState):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NewErrorHandler maps apperr kinds, validation failures and echo errors to JSON bodies.
// Anything unclassified is logged and reported as a generic 500.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := ErrorResponse{Error: "internal server error"}

		var (
			ve validator.ValidationErrors
			he *echo.HTTPError
		)
		switch {
		case errors.As(err, &ve):
			code = http.StatusBadRequest
			body = ErrorResponse{Error: "validation failed", Details: ToFieldErrors(ve)}
		case statusFor(err) != http.StatusInternalServerError:
			code = statusFor(err)
			body = ErrorResponse{Error: apperr.Message(err)}
		case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
			code = he.Code
			body = ErrorResponse{Error: http.StatusText(he.Code)}
			if msg, ok := he.Message.(string); ok && msg != "" {
				body.Error = msg
			}
		default:
			log.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			log.Warn("error response write failed", zap.Error(err))
		}
	}
}
