package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gamelibrary/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ErrMissingToken = "Missing or malformed bearer token"
	ErrInvalidToken = "Invalid token"

	// SubjectKey is where the token subject is stored on the gin context
	SubjectKey = "subject"
)

// AuthMiddleware requires an HS256 bearer token signed with secret. An
// empty secret disables the check.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, ErrMissingToken)
			c.Abort()
			return
		}

		subject, err := parseSubject(tokenString, secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}

func parseSubject(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is not valid")
	}
	return token.Claims.GetSubject()
}
