// Package main book-renter API.
//
// @title           Book Renter API
// @version         1.0
// @description     Peer-to-peer book rental/sale marketplace (listings, rent requests, messages, reports).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Saadasw/book-renter/app/echoServer"
	adminctrl "github.com/Saadasw/book-renter/app/echoServer/controller/admin"
	authctrl "github.com/Saadasw/book-renter/app/echoServer/controller/auth"
	bookctrl "github.com/Saadasw/book-renter/app/echoServer/controller/book"
	messagectrl "github.com/Saadasw/book-renter/app/echoServer/controller/message"
	profilectrl "github.com/Saadasw/book-renter/app/echoServer/controller/profile"
	rentctrl "github.com/Saadasw/book-renter/app/echoServer/controller/rent"
	reportctrl "github.com/Saadasw/book-renter/app/echoServer/controller/report"
	"github.com/Saadasw/book-renter/app/echoServer/validation"
	"github.com/Saadasw/book-renter/config"
	authrepo "github.com/Saadasw/book-renter/repository/auth"
	bookrepo "github.com/Saadasw/book-renter/repository/book"
	messagerepo "github.com/Saadasw/book-renter/repository/message"
	rentrepo "github.com/Saadasw/book-renter/repository/rent"
	reportrepo "github.com/Saadasw/book-renter/repository/report"
	userrepo "github.com/Saadasw/book-renter/repository/user"
	adminsvc "github.com/Saadasw/book-renter/service/admin"
	authsvc "github.com/Saadasw/book-renter/service/auth"
	booksvc "github.com/Saadasw/book-renter/service/book"
	messagesvc "github.com/Saadasw/book-renter/service/message"
	profilesvc "github.com/Saadasw/book-renter/service/profile"
	rentsvc "github.com/Saadasw/book-renter/service/rent"
	reportsvc "github.com/Saadasw/book-renter/service/report"
	"github.com/Saadasw/book-renter/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB over the pgx stdlib driver
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ar := authrepo.New(db)
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	rr := rentrepo.New(db)
	mr := messagerepo.New(db)
	repr := reportrepo.New(db)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	bs := booksvc.New(br, ur)
	rs := rentsvc.New(rr)
	ps := profilesvc.New(ur)
	ms := messagesvc.New(mr, ur)
	reps := reportsvc.New(repr, ur)
	adms := adminsvc.New(ur, br)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	rentC := &rentctrl.Controller{Svc: rs, V: v, Log: log}
	profileC := &profilectrl.Controller{Svc: ps, V: v, Log: log}
	messageC := &messagectrl.Controller{Svc: ms, V: v, Log: log}
	reportC := &reportctrl.Controller{Svc: reps, V: v, Log: log}
	adminC := &adminctrl.Controller{Svc: adms, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Book:    bookC,
		Rent:    rentC,
		Profile: profileC,
		Message: messageC,
		Report:  reportC,
		Admin:   adminC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
