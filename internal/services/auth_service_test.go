package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homevest_backend/internal/auth"
	"homevest_backend/internal/database"
	"homevest_backend/internal/demo"
	"homevest_backend/internal/email"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

type authFixture struct {
	svc      AuthService
	store    *demo.Store
	partners repositories.PartnerRepository
	resets   repositories.PasswordResetRepository
}

func newAuthFixture() *authFixture {
	health := database.NewHealthChecker(nil, 0)
	store := demo.NewStore()
	partners := repositories.NewPartnerRepository(nil, health, store)
	resets := repositories.NewPasswordResetRepository(nil, health, store)

	svc := NewAuthService(
		repositories.NewInvestorRepository(nil, health, store),
		repositories.NewInstitutionalRepository(nil, health, store),
		partners,
		repositories.NewAdminRepository(nil, health, store),
		repositories.NewSessionRepository(nil, health, store),
		resets,
		auth.PlainHasher{},
		email.NewMockSender(),
	)
	return &authFixture{svc: svc, store: store, partners: partners, resets: resets}
}

// A correct password for a pending or deactivated account must fail exactly
// like a wrong password, otherwise login confirms the credential pair.
func TestLoginErrorIsUniformAcrossAccountStates(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.partners.Create(ctx, &models.Partner{
		Username:       "pending-seller",
		PasswordHash:   "secret123",
		Email:          "pending@sellers.com",
		ApprovalStatus: models.ApprovalPending,
		IsActive:       false,
	})
	require.NoError(t, err)

	_, wrongPass := f.svc.Login(ctx, models.RolePartner, "pending-seller", "not-the-password")
	_, rightPass := f.svc.Login(ctx, models.RolePartner, "pending-seller", "secret123")
	_, noUser := f.svc.Login(ctx, models.RolePartner, "ghost", "secret123")

	assert.Equal(t, apperrors.ErrInvalidCredentials, wrongPass)
	assert.Equal(t, apperrors.ErrInvalidCredentials, rightPass)
	assert.Equal(t, apperrors.ErrInvalidCredentials, noUser)
}

func TestLoginRejectsDeactivatedAdminUniformly(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.store.CreateAdmin(&models.AdminUser{
		Username:     "retired",
		PasswordHash: "retired123",
		IsActive:     false,
	})

	_, err := f.svc.Login(ctx, models.RoleAdmin, "retired", "retired123")
	assert.Equal(t, apperrors.ErrInvalidCredentials, err)
}

func TestResetPasswordExpiredTokenHasDistinctCode(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	inv := f.store.GetInvestorByUsername("demo")
	require.NotNil(t, inv)

	_, err := f.resets.Create(ctx, &models.PasswordResetToken{
		UserID:    inv.ID,
		UserType:  models.RoleInvestor,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	err = f.svc.ResetPassword(ctx, ResetPasswordRequest{Token: "stale-token", NewPassword: "freshpass456"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTokenExpired, appErr.Code)

	// The expired token must not have changed anything.
	_, err = f.svc.Login(ctx, models.RoleInvestor, "demo", "demo123")
	assert.NoError(t, err)
}

func TestResetPasswordUnknownTokenStaysGeneric(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ResetPassword(context.Background(), ResetPasswordRequest{Token: "no-such-token", NewPassword: "freshpass456"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}
