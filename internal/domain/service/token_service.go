package service

import (
	"evently/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an identity token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating identity
// tokens. Tokens are stateless and self-contained; possession of the signing
// secret is required both to issue and to validate them.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user and role.
	Issue(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims when the
	// signature and expiry are valid.
	Validate(tokenString string) (*Claims, error)
}
