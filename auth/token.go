package auth

import (
	"time"

	"github.com/admindocentes/backend/models"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 72 * time.Hour

// GenerateToken signs a session JWT with the claim shape the HTTP middleware
// reads back (user_id, role, exp).
func GenerateToken(user models.SessionUser, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
