package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), testLog(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(context.Background(), &dtos.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
		FullName: "Jane Doe",
		Role:     "EMPLOYER",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEmployer, user.Role)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	loggedIn, token, err := svc.Login(context.Background(), &dtos.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	userID, role, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, models.RoleEmployer, role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	req := &dtos.RegisterRequest{Email: "jane@example.com", Password: "correct-horse", FullName: "Jane"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register(context.Background(), &dtos.RegisterRequest{
		Email: "jane@example.com", Password: "correct-horse", FullName: "Jane",
	})
	require.NoError(t, err)

	for _, req := range []*dtos.LoginRequest{
		{Email: "jane@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "correct-horse"},
	} {
		_, _, err := svc.Login(context.Background(), req)
		require.Error(t, err)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	}
}

func TestParseTokenRejectsForgeries(t *testing.T) {
	svc := newAuthService(t)
	user, err := svc.Register(context.Background(), &dtos.RegisterRequest{
		Email: "jane@example.com", Password: "correct-horse", FullName: "Jane",
	})
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	otherSecret := NewAuthService(svc.DB, testLog(), "other-secret", time.Hour)
	_, _, err = otherSecret.ParseToken(token)
	require.Error(t, err)

	_, _, err = svc.ParseToken("not-a-token")
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testLog(), "test-secret", -time.Minute)
	user, err := svc.Register(context.Background(), &dtos.RegisterRequest{
		Email: "jane@example.com", Password: "correct-horse", FullName: "Jane",
	})
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	_, _, err = svc.ParseToken(token)
	require.Error(t, err)
}
