package admin

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	adminsvc "github.com/Saadasw/book-renter/service/admin"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc adminsvc.Service
	Log *slog.Logger
}

// DELETE /v1/admin/users/:id
func (h *Controller) DeleteUser(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.DeleteUser(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "admin delete user", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted successfully"})
}

// DELETE /v1/admin/books/:id
func (h *Controller) DeleteBook(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.DeleteBook(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "admin delete book", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book deleted successfully"})
}
