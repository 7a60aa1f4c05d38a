package session

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Session lifetimes. The OTP path picks between DefaultTTL and ExtendedTTL
// depending on the "keep me logged in" choice; Google sign-ins always get
// GoogleTTL.
const (
	DefaultTTL  = time.Hour
	ExtendedTTL = 30 * 24 * time.Hour
	GoogleTTL   = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("token is not valid")

// Claims binds the subject user ID to the standard expiry claims. Tokens are
// stateless: there is no server-side revocation, possession of a validly
// signed unexpired token is the sole authorization proof.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

func Generate(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// Parse validates the signature and expiry locally and returns the claims
// if the token is authentic and unexpired.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// FromRequestCtx extracts the raw bearer token from the Authorization
// header, returning "" when none is carried.
func FromRequestCtx(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
