package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"homevest_backend/internal/config"
	"homevest_backend/internal/models"
)

// Claims is the JWT payload for partner accounts. The other three roles use
// opaque database-backed session tokens instead.
type Claims struct {
	UserID   string             `json:"user_id"`
	Username string             `json:"username"`
	Email    string             `json:"email"`
	Role     models.AccountRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 partner token with the configured TTL.
func GenerateToken(p *models.Partner) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.Auth.JWTTTLDays) * 24 * time.Hour
	now := time.Now()

	claims := Claims{
		UserID:   p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     models.RolePartner,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "homevest",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

// ParseToken validates signature, algorithm, and expiry.
func ParseToken(tokenString string) (*Claims, error) {
	cfg := config.GetConfig()
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// NewSessionToken mints an opaque session token. Two UUIDs keep the value
// unguessable and collision-free across the three session tables.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// NewResetToken mints a single-use password reset token.
func NewResetToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
