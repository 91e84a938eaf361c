package echoServer

import (
	adminctrl "github.com/Saadasw/book-renter/app/echoServer/controller/admin"
	authctrl "github.com/Saadasw/book-renter/app/echoServer/controller/auth"
	bookctrl "github.com/Saadasw/book-renter/app/echoServer/controller/book"
	messagectrl "github.com/Saadasw/book-renter/app/echoServer/controller/message"
	profilectrl "github.com/Saadasw/book-renter/app/echoServer/controller/profile"
	rentctrl "github.com/Saadasw/book-renter/app/echoServer/controller/rent"
	reportctrl "github.com/Saadasw/book-renter/app/echoServer/controller/report"
	"github.com/Saadasw/book-renter/app/echoServer/jwtx"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth    *authctrl.Controller
	Book    *bookctrl.Controller
	Rent    *rentctrl.Controller
	Profile *profilectrl.Controller
	Message *messagectrl.Controller
	Report  *reportctrl.Controller
	Admin   *adminctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	auth := e.Group("/v1")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := jwtx.UserIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			return next(ctx)
		}
	})

	// Books + search
	auth.GET("/books", c.Book.Search)
	auth.POST("/books", c.Book.Create)
	auth.GET("/books/:id", c.Book.Detail)
	auth.DELETE("/books/:id", c.Book.Delete)
	auth.POST("/books/:id/images", c.Book.AddImage)
	auth.GET("/books/:id/images", c.Book.Images)
	auth.GET("/users/:id/books", c.Book.ByOwner)

	// Rental lifecycle
	auth.POST("/rent-requests", c.Rent.Create)
	auth.POST("/rent-requests/:id/accept", c.Rent.Accept)
	auth.POST("/rent-requests/:id/reject", c.Rent.Reject)
	auth.POST("/rent-requests/:id/payment", c.Rent.CompletePayment)
	auth.GET("/rent-requests/my", c.Rent.My)

	// Profiles
	auth.GET("/me", c.Profile.Me)
	auth.PUT("/me/location", c.Profile.UpdateLocation)
	auth.PUT("/me/contact", c.Profile.UpdateContact)
	auth.PUT("/me/visibility", c.Profile.UpdateVisibility)
	auth.GET("/profiles/:id", c.Profile.Public)

	// Messages & reports
	auth.POST("/messages", c.Message.Send)
	auth.GET("/messages/my", c.Message.My)
	auth.POST("/reports", c.Report.Submit)

	// Admin
	auth.GET("/admin/reports", c.Report.List)
	auth.POST("/admin/reports/:id/review", c.Report.Review)
	auth.DELETE("/admin/users/:id", c.Admin.DeleteUser)
	auth.DELETE("/admin/books/:id", c.Admin.DeleteBook)
}
