package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"busbooking/internal/domain"
)

// NewToken signs an HS256 JWT carrying the payer identity in the
// subject claim.
func NewToken(secret, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a signed token and returns the subject.
func ParseToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", domain.ValidationError{Field: "token", Msg: "invalid or expired token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ValidationError{Field: "token", Msg: "invalid claims"}
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ValidationError{Field: "token", Msg: "missing subject"}
	}
	return sub, nil
}
