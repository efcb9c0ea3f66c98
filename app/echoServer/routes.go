package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/furkanevin/car-rental/app/echoServer/controller/auth"
	"github.com/furkanevin/car-rental/app/echoServer/controller/car"
	"github.com/furkanevin/car-rental/app/echoServer/controller/checkout"
	"github.com/furkanevin/car-rental/app/echoServer/controller/order"
	"github.com/furkanevin/car-rental/app/echoServer/controller/payment"
)

type C struct {
	Auth     *auth.Controller
	Car      *car.Controller
	Checkout *checkout.Controller
	Order    *order.Controller
	Payment  *payment.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)

	// Catalog browsing needs no session.
	pub.GET("/cars", c.Car.List)
	pub.GET("/cars/:id", c.Car.Detail)

	// Provider callback; authenticated by its signature header, not a session.
	pub.POST("/webhook", c.Payment.HandleStripe)

	// Auth
	authGroup := e.Group("/api")
	authGroup.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "header:Authorization",

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		},
	}))

	authGroup.POST("/checkout", c.Checkout.Start)
	authGroup.GET("/orders", c.Order.List)
	authGroup.GET("/orders/:id", c.Order.Detail)
}
