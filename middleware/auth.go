package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/photoloop/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func parseBearerToken(c *gin.Context) *utils.UserClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil
	}

	return &utils.UserClaims{UserID: uint(userID)}
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims := parseBearerToken(c)
		if userClaims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)
		c.Next()
	}
}

// AuthOptional resolves the caller when a valid token is present and lets the
// request through either way. Feed and comment reads work anonymously.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userClaims := parseBearerToken(c); userClaims != nil {
			c.Set(string(utils.UserContextKey), userClaims)
		}
		c.Next()
	}
}
