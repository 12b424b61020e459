package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tmuriuki/cashlink/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestIdentityService_FindUserByPhone(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	svc := NewIdentityService(users)

	known := &models.UserDB{UserID: uuid.New(), Phone: "+233551234567"}
	users.EXPECT().GetByPhone(ctx, "+233551234567").Return(known, nil)

	user, err := svc.FindUserByPhone(ctx, "+233551234567")
	assert.NoError(t, err)
	assert.Equal(t, known.UserID, user.UserID)

	users.EXPECT().GetByPhone(ctx, "+233550000000").Return(nil, nil)
	_, err = svc.FindUserByPhone(ctx, "+233550000000")
	assert.ErrorIs(t, err, ErrUserNotFound)

	users.EXPECT().GetByPhone(ctx, "+233551234567").Return(nil, errors.New("db down"))
	_, err = svc.FindUserByPhone(ctx, "+233551234567")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestIdentityService_ValidatePin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserReader(ctrl)
	svc := NewIdentityService(users)

	user := &models.UserDB{UserID: userID, PinHash: string(hash)}

	users.EXPECT().GetByID(ctx, userID).Return(user, nil)
	assert.NoError(t, svc.ValidatePin(ctx, userID, "1234"))

	users.EXPECT().GetByID(ctx, userID).Return(user, nil)
	assert.ErrorIs(t, svc.ValidatePin(ctx, userID, "9999"), ErrInvalidCredentials)

	// An unknown user is indistinguishable from a wrong PIN.
	users.EXPECT().GetByID(ctx, userID).Return(nil, nil)
	assert.ErrorIs(t, svc.ValidatePin(ctx, userID, "1234"), ErrInvalidCredentials)

	users.EXPECT().GetByID(ctx, userID).Return(nil, errors.New("db down"))
	assert.ErrorIs(t, svc.ValidatePin(ctx, userID, "1234"), ErrUpstreamUnavailable)
}
