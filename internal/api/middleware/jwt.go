package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/apply-service/internal/config"
	"github.com/linskybing/apply-service/pkg/response"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// Claims carry the submitter identity issued by the user service.
type Claims struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the given account.
var GenerateToken = func(account, name string, expireDuration time.Duration) (string, error) {
	claims := &Claims{
		Account: account,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// JWTAuthMiddleware validates a Bearer token in the Authorization header and
// stores the claims on the context. It is not applied to the apply routes
// unless AUTH_ENABLED is set.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Detail: "Missing or invalid Authorization header"})
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Detail: "Missing or invalid Authorization header"})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Detail: "Invalid token"})
			c.Abort()
			return
		}

		c.Set("account", claims.Account)
		c.Set("name", claims.Name)
		c.Next()
	}
}
