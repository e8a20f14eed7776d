package usecase

import (
	"freebusy/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow port the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.CalendarID, nil
}
