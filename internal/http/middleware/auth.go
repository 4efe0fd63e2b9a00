package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"busbooking/internal/auth"
)

const payerKey = "payer_identity"

// Identity resolves the payer identity from a bearer token when one is
// present. Anonymous requests pass through; a booking committed without
// a token is recorded against "Guest".
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sub, ok := bearerSubject(c, secret); ok {
			c.Set(payerKey, sub)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := bearerSubject(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "missing or invalid token",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(payerKey, sub)
		c.Next()
	}
}

// GetPayer returns the authenticated payer identity, if any.
func GetPayer(c *gin.Context) string {
	if v, ok := c.Get(payerKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func bearerSubject(c *gin.Context, secret string) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	sub, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", false
	}
	return sub, true
}
