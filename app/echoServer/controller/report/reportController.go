package report

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	"github.com/Saadasw/book-renter/model"
	reportsvc "github.com/Saadasw/book-renter/service/report"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SubmitReportReq struct {
	ReportedUserID string `json:"reported_user_id" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
}

type ReviewReportReq struct {
	Status string `json:"status" validate:"required,oneof=reviewed dismissed"`
}

type Controller struct {
	Svc reportsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/reports
func (h *Controller) Submit(c echo.Context) error {
	var req SubmitReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	rep, err := h.Svc.Submit(c.Request().Context(), uid, uid, req.ReportedUserID, req.Reason)
	if err != nil {
		return respond.Err(c, h.Log, "report submit", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "user reported successfully", "report": rep})
}

// GET /v1/admin/reports
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	rows, err := h.Svc.List(c.Request().Context(), uid)
	if err != nil {
		return respond.Err(c, h.Log, "report list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// POST /v1/admin/reports/:id/review
func (h *Controller) Review(c echo.Context) error {
	var req ReviewReportReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	if err := h.Svc.Review(c.Request().Context(), uid, c.Param("id"), model.ReportStatus(req.Status)); err != nil {
		return respond.Err(c, h.Log, "report review", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "report updated"})
}
