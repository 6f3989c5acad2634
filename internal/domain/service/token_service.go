package service

import (
	"time"

	"jobsearch/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating auth tokens.
// The access token carries the account's profile kind so authorization is a
// single claim lookup instead of structural probing.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, kind entity.ProfileKind) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
	GetRefreshTokenDuration() time.Duration
}
