// Package respond maps coded service errors onto HTTP responses so every
// controller surfaces the same status for the same error kind.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/util/apperr"

	"github.com/labstack/echo/v4"
)

func Err(c echo.Context, log *slog.Logger, op string, err error) error {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
	case apperr.Unauthorized:
		return c.JSON(http.StatusForbidden, echo.Map{"message": err.Error()})
	case apperr.InvalidState:
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case apperr.Validation:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	default:
		log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
