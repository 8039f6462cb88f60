package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "auth_claims"

// Claims is the JWT payload. Everything the storefront shows about the
// signed-in account (name, email, phone, role) travels in the token so
// the client never has to refetch the profile.
type Claims struct {
	UserID   int64  `json:"userid"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "dev-secret-please-change"
	}
	return []byte(s)
}

// GenerateToken signs a token for the account, valid for the given number of hours.
func GenerateToken(userID int64, email, fullName, phone, role string, hours int) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		Phone:    phone,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(hours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "petstore-api",
		},
	})
	return t.SignedString(secret())
}

// JWTMiddleware validates the bearer token and stores the claims on the context
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			parts := strings.Fields(auth)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or invalid authorization header"})
			}

			token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
				return secret(), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			cl, ok := token.Claims.(*Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token claims"})
			}

			c.Set(claimsContextKey, cl)
			return next(c)
		}
	}
}

// GetClaims returns the claims set by JWTMiddleware, or nil outside it
func GetClaims(c echo.Context) *Claims {
	cl, _ := c.Get(claimsContextKey).(*Claims)
	return cl
}

// AdminOnly rejects requests whose token does not carry the admin role
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cl := GetClaims(c)
		if cl == nil || cl.Role != "admin" {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin role required"})
		}
		return next(c)
	}
}
