package services_test

import (
	"context"
	"testing"

	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	reg, err := sc.AuthService.Register(context.Background(), db, &dto.RegisterRequest{
		Name:     "Ivan",
		Email:    "ivan@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AccessToken)
	assert.NotEmpty(t, reg.RefreshToken)
	assert.Equal(t, "ivan@test.com", reg.User.Email)

	login, err := sc.AuthService.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "ivan@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	me, err := sc.AuthService.GetMe(context.Background(), db, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ivan", me.Name)
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	req := &dto.RegisterRequest{
		Name:     "First",
		Email:    "dup@test.com",
		Password: "super_password123",
	}
	_, err := sc.AuthService.Register(context.Background(), db, req)
	require.NoError(t, err)

	_, err = sc.AuthService.Register(context.Background(), db, req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	_, err := sc.AuthService.Register(context.Background(), db, &dto.RegisterRequest{
		Name:     "Victim",
		Email:    "victim@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	// Неверный пароль и несуществующий email дают один и тот же ответ
	_, err = sc.AuthService.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "victim@test.com",
		Password: "wrong_password",
	})
	require.Error(t, err)
	wrongPass, ok := apperrors.AsAppError(err)
	require.True(t, ok)

	_, err = sc.AuthService.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "super_password123",
	})
	require.Error(t, err)
	noUser, ok := apperrors.AsAppError(err)
	require.True(t, ok)

	assert.Equal(t, wrongPass.Code, noUser.Code)
	assert.Equal(t, apperrors.CodeInvalidCredentials, wrongPass.Code)
}

func TestAuthRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	reg, err := sc.AuthService.Register(context.Background(), db, &dto.RegisterRequest{
		Name:     "Rotator",
		Email:    "rotate@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	refreshed, err := sc.AuthService.Refresh(context.Background(), db, reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, refreshed.RefreshToken)

	// Старый refresh-токен отозван ротацией
	_, err = sc.AuthService.Refresh(context.Background(), db, reg.RefreshToken)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidToken, appErr.Code)
}

func TestAuthLogout_RevokesRefreshToken(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	reg, err := sc.AuthService.Register(context.Background(), db, &dto.RegisterRequest{
		Name:     "Leaver",
		Email:    "leaver@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)

	require.NoError(t, sc.AuthService.Logout(context.Background(), db, reg.RefreshToken))

	_, err = sc.AuthService.Refresh(context.Background(), db, reg.RefreshToken)
	require.Error(t, err)
}

func TestAuthRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)

	_, err := sc.AuthService.Register(context.Background(), db, &dto.RegisterRequest{
		Name:     "Weak",
		Email:    "weak@test.com",
		Password: "short",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
