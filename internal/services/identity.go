package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tmuriuki/cashlink/internal/logger"
	"github.com/tmuriuki/cashlink/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByPhone(ctx context.Context, phone string) (*models.UserDB, error) // Returns nil when no user matches
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// IdentityService resolves users and verifies transaction PINs.
type IdentityService struct {
	users UserReader
}

// NewIdentityService creates a new IdentityService instance.
func NewIdentityService(users UserReader) *IdentityService {
	return &IdentityService{users: users}
}

// FindUserByPhone resolves a user by phone number.
func (svc *IdentityService) FindUserByPhone(ctx context.Context, phone string) (*models.UserDB, error) {
	user, err := svc.users.GetByPhone(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to look up user by phone", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ValidatePin verifies the user's transaction PIN against the stored
// bcrypt hash.
func (svc *IdentityService) ValidatePin(ctx context.Context, userID uuid.UUID, pin string) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)); err != nil {
		logger.Log.Warnw("PIN verification failed", "user_id", userID)
		return ErrInvalidCredentials
	}
	return nil
}
