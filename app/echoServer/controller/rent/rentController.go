package rent

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	rentsvc "github.com/Saadasw/book-renter/service/rent"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rent-requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	out, err := h.Svc.Request(c.Request().Context(), req.BookID, uid, req.DeliveryAddress)
	if err != nil {
		return respond.Err(c, h.Log, "rent request", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "rent request sent successfully", "request": out})
}

// POST /v1/rent-requests/:id/accept
func (h *Controller) Accept(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.Accept(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "rent accept", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rent request accepted"})
}

// POST /v1/rent-requests/:id/reject
func (h *Controller) Reject(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.Reject(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "rent reject", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "rent request rejected"})
}

// POST /v1/rent-requests/:id/payment
func (h *Controller) CompletePayment(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.CompletePayment(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "rent payment", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "payment completed successfully"})
}

// GET /v1/rent-requests/my
func (h *Controller) My(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	rows, err := h.Svc.ForUser(c.Request().Context(), uid)
	if err != nil {
		return respond.Err(c, h.Log, "rent history", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
