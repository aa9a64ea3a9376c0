package http

import (
	"net/http"
	"strings"
	"time"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims is the bearer token payload issued by the campus identity service.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for userID. The identity service is the
// real issuer; this exists for operators and tests.
func IssueToken(secret []byte, userID kernel.UUID, role auth.Role, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// JWTMiddleware verifies the bearer token and stores the caller's
// auth.Principal on the echo context. Ownership is checked by the use
// cases, not here.
func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
			}
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			principal, err := principalFromClaims(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token claims").SetInternal(err)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func principalFromClaims(claims *Claims) (auth.Principal, error) {
	rawID := claims.UserID
	if rawID == "" {
		rawID = claims.Subject
	}
	userID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return auth.Principal{}, err
	}
	role, err := auth.ParseRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.NewPrincipal(userID, role)
}

// principalFrom returns the principal set by JWTMiddleware. An unconstructed
// principal is returned when the middleware did not run; use cases reject it.
func principalFrom(c echo.Context) auth.Principal {
	p, _ := c.Get(principalKey).(auth.Principal)
	return p
}
