package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleUser and RoleAdmin are the two role claims issued by the auth
// feature. Admin routes require RoleAdmin.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Generator defines the interface for API bearer token generation.
type Generator interface {
	// GenerateToken creates a signed JWT for the given subject.
	GenerateToken(subjectID, email, role string) (string, error)
}

type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a JWT generator with the provided secret and
// expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT with standard claims plus the
// role claim consumed by the admin middleware.
func (g *generator) GenerateToken(subjectID, email, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subjectID,
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
		"email": email,
		"role":  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
