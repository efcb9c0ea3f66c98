// Package main car rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car rental storefront (catalog, checkout, orders, users).
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

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/furkanevin/car-rental/app/echoServer"
	authctrl "github.com/furkanevin/car-rental/app/echoServer/controller/auth"
	carctrl "github.com/furkanevin/car-rental/app/echoServer/controller/car"
	checkoutctrl "github.com/furkanevin/car-rental/app/echoServer/controller/checkout"
	orderctrl "github.com/furkanevin/car-rental/app/echoServer/controller/order"
	paymentctrl "github.com/furkanevin/car-rental/app/echoServer/controller/payment"
	"github.com/furkanevin/car-rental/app/echoServer/validation"
	"github.com/furkanevin/car-rental/config"
	carrepo "github.com/furkanevin/car-rental/repository/car"
	orderrepo "github.com/furkanevin/car-rental/repository/order"
	striperepo "github.com/furkanevin/car-rental/repository/stripe"
	userrepo "github.com/furkanevin/car-rental/repository/user"
	authsvc "github.com/furkanevin/car-rental/service/auth"
	catalogsvc "github.com/furkanevin/car-rental/service/catalog"
	checkoutsvc "github.com/furkanevin/car-rental/service/checkout"
	ordersvc "github.com/furkanevin/car-rental/service/order"
	paymentsvc "github.com/furkanevin/car-rental/service/payment"
	"github.com/furkanevin/car-rental/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: mongo collection registry, built once and passed down
	store, err := database.New(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Error("index setup failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(store)
	cr := carrepo.New(store)
	or := orderrepo.New(store)
	sr := striperepo.NewAPI(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cs := catalogsvc.New(cr)
	chs := checkoutsvc.New(cr, or, sr, cfg.BaseURL)
	osvc := ordersvc.New(or, cr, ur)
	ps := paymentsvc.New(sr, or)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	carC := &carctrl.Controller{Svc: cs, Log: log}
	checkoutC := &checkoutctrl.Controller{Svc: chs, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: osvc, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, Log: log}

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
		Auth:     authC,
		Car:      carC,
		Checkout: checkoutC,
		Order:    orderC,
		Payment:  paymentC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
