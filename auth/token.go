package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hearhut/storefront-api/models"
)

// IssueSessionToken signs a 24h HS256 token for the session so the page
// layer can carry it between requests.
func IssueSessionToken(sess models.Session) (string, error) {
	claims := jwt.MapClaims{
		"email": sess.Email,
		"name":  sess.Name,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseSessionToken validates a session token and returns the email claim.
func ParseSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("token missing email claim")
	}
	return email, nil
}
