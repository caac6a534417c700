package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// AuthMiddleware verifies the bearer access token and stores its "id" claim under UserIDKey.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewFail(domain.ErrUnauthorized.Error()))
			return
		}
		raw := strings.TrimSpace(h[len("Bearer "):])

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewFail("invalid access token"))
			return
		}

		uid, _ := claims["id"].(string)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.NewFail("invalid access token"))
			return
		}

		c.Set(UserIDKey, uid)
		c.Next()
	}
}
