package http

import (
	"strconv"
	"strings"

	"pet-adoption-backend/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive numeric path parameter that fits a BIGINT key.
func pathID(c echo.Context, name string) (uint64, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || n == 0 {
		return 0, apperr.InvalidInput("invalid %s", name)
	}
	return n, nil
}
