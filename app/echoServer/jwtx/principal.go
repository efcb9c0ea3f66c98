package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	jwtutil "github.com/furkanevin/car-rental/util/jwt"
)

// PrincipalFromContext rebuilds the session principal from the token echo-jwt
// stored on the context. No database read happens here.
func PrincipalFromContext(c echo.Context) (jwtutil.Principal, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return jwtutil.Principal{}, errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return jwtutil.Principal{}, errors.New("invalid jwt claims")
	}
	return jwtutil.FromClaims(claims)
}
