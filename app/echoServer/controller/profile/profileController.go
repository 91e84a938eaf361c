package profile

import (
	"log/slog"
	"net/http"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	"github.com/Saadasw/book-renter/model"
	profilesvc "github.com/Saadasw/book-renter/service/profile"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc profilesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/me
func (h *Controller) Me(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	u, err := h.Svc.Get(c.Request().Context(), uid)
	if err != nil {
		return respond.Err(c, h.Log, "profile me", err)
	}
	v, err := h.Svc.Visibility(c.Request().Context(), uid)
	if err != nil {
		return respond.Err(c, h.Log, "profile visibility", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": u, "visibility": v})
}

// GET /v1/profiles/:id
//
// Other users only ever see the projection.
func (h *Controller) Public(c echo.Context) error {
	p, err := h.Svc.Public(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "public profile", err)
	}
	return c.JSON(http.StatusOK, p)
}

// PUT /v1/me/location
func (h *Controller) UpdateLocation(c echo.Context) error {
	var req UpdateLocationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	loc := &model.Location{Latitude: req.Latitude, Longitude: req.Longitude, Address: req.Address}
	if err := h.Svc.UpdateLocation(c.Request().Context(), uid, uid, loc); err != nil {
		return respond.Err(c, h.Log, "update location", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "location updated successfully"})
}

// PUT /v1/me/contact
func (h *Controller) UpdateContact(c echo.Context) error {
	var req UpdateContactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	if err := h.Svc.UpdateContactNumber(c.Request().Context(), uid, uid, req.ContactNumber); err != nil {
		return respond.Err(c, h.Log, "update contact", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "contact number updated successfully"})
}

// PUT /v1/me/visibility
func (h *Controller) UpdateVisibility(c echo.Context) error {
	var req UpdateVisibilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	uid, _ := c.Get("user_id").(string)

	v := model.Visibility{
		UserID:          uid,
		VisibleName:     req.VisibleName,
		VisibleEmail:    req.VisibleEmail,
		VisibleContact:  req.VisibleContact,
		VisibleAddress:  req.VisibleAddress,
		VisibleLocation: req.VisibleLocation,
	}
	if err := h.Svc.UpdateVisibility(c.Request().Context(), uid, v); err != nil {
		return respond.Err(c, h.Log, "update visibility", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "visibility updated"})
}
