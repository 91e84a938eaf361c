package message

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	messagesvc "github.com/Saadasw/book-renter/service/message"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SendMessageReq struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type Controller struct {
	Svc messagesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/messages
func (h *Controller) Send(c echo.Context) error {
	var req SendMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	m, err := h.Svc.Send(c.Request().Context(), uid, uid, req.ReceiverID, req.Content)
	if err != nil {
		return respond.Err(c, h.Log, "message send", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "message sent successfully", "data": m})
}

// GET /v1/messages/my
func (h *Controller) My(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	rows, err := h.Svc.ForUser(c.Request().Context(), uid)
	if err != nil {
		return respond.Err(c, h.Log, "message list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
