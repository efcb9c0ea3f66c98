package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the identity embedded in the session token. It is rebuilt from
// claims on every request; no database read is involved after issuance.
type Principal struct {
	ID        string
	Email     string
	Name      string
	Image     string
	FirstName string
	LastName  string
	Phone     string
}

func Issue(secret string, p Principal, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"sub":       p.ID,
		"email":     p.Email,
		"name":      p.Name,
		"image":     p.Image,
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"exp":       time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	if p.Phone != "" {
		claims["phone"] = p.Phone
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// FromClaims reconstitutes the principal from parsed token claims.
func FromClaims(mc jwt.MapClaims) (Principal, error) {
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return Principal{}, errors.New("sub missing in claims")
	}
	str := func(k string) string {
		s, _ := mc[k].(string)
		return s
	}
	return Principal{
		ID:        sub,
		Email:     str("email"),
		Name:      str("name"),
		Image:     str("image"),
		FirstName: str("firstName"),
		LastName:  str("lastName"),
		Phone:     str("phone"),
	}, nil
}

func ParseAuth(authHeader string, secret string) (Principal, error) {
	tokenStr := strings.TrimSpace(authHeader)
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[7:])
	}
	if tokenStr == "" {
		return Principal{}, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Principal{}, err
	}
	if !tok.Valid {
		return Principal{}, errors.New("invalid token")
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errors.New("invalid claims")
	}
	return FromClaims(mc)
}
