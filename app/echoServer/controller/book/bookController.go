package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Saadasw/book-renter/app/echoServer/respond"
	"github.com/Saadasw/book-renter/model"
	booksvc "github.com/Saadasw/book-renter/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/books
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	b, err := h.Svc.Create(c.Request().Context(), uid, booksvc.CreateInput{
		Title:       req.Title,
		Author:      req.Author,
		ListingType: model.ListingType(req.ListingType),
		RentalPrice: req.RentalPrice,
		SalePrice:   req.SalePrice,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return respond.Err(c, h.Log, "book create", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "book added successfully", "book": toResp(*b)})
}

// GET /v1/books
//
// Query params compose as a conjunction: q, status, listing_type,
// max_rental_price.
func (h *Controller) Search(c echo.Context) error {
	f := booksvc.SearchFilter{
		Query:       c.QueryParam("q"),
		Status:      model.BookStatus(c.QueryParam("status")),
		ListingType: model.ListingType(c.QueryParam("listing_type")),
	}
	if raw := c.QueryParam("max_rental_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid max_rental_price"})
		}
		f.MaxRentalPrice = &v
	}

	rows, err := h.Svc.Search(c.Request().Context(), f)
	if err != nil {
		return respond.Err(c, h.Log, "book search", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": toRespList(rows)})
}

// GET /v1/books/:id
func (h *Controller) Detail(c echo.Context) error {
	b, imgs, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "book detail", err)
	}
	resp := toResp(*b)
	return c.JSON(http.StatusOK, echo.Map{"book": resp, "images": imgs})
}

// GET /v1/users/:id/books
func (h *Controller) ByOwner(c echo.Context) error {
	rows, err := h.Svc.ByOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "books by owner", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": toRespList(rows)})
}

// DELETE /v1/books/:id
func (h *Controller) Delete(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	if err := h.Svc.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return respond.Err(c, h.Log, "book delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "book deleted successfully"})
}

// POST /v1/books/:id/images
func (h *Controller) AddImage(c echo.Context) error {
	var req AddImageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, _ := c.Get("user_id").(string)

	img, err := h.Svc.AddImage(c.Request().Context(), uid, c.Param("id"), req.ImageURL)
	if err != nil {
		return respond.Err(c, h.Log, "book add image", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "image added", "image": img})
}

// GET /v1/books/:id/images
func (h *Controller) Images(c echo.Context) error {
	imgs, err := h.Svc.Images(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respond.Err(c, h.Log, "book images", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": imgs})
}
