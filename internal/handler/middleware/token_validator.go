package middleware

import (
	"venue-booking/internal/domain/staff"
	"venue-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token into the current operator.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, staff.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{
		jwtService: jwtService,
	}
}

func (t *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, staff.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.StaffID, role, nil
}
