package service

import (
	"context"
	"testing"

	"smart-warehouse-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStaffAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	uow := newFakeUnitOfWork()
	svc := NewAuthService(&fakeFactory{uow: uow})

	profile, err := svc.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email:    "admin@smartwarehouse.tn",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@smartwarehouse.tn", profile.Email)

	// The stored password is hashed, never the plaintext.
	require.Len(t, uow.users.users, 1)
	assert.NotEqual(t, "admin123", uow.users.users[0].Password)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@smartwarehouse.tn",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, profile.Id, res.User.Id)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, profile.Id.String(), claims["user_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	uow := newFakeUnitOfWork()
	svc := NewAuthService(&fakeFactory{uow: uow})

	_, err := svc.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email: "admin@smartwarehouse.tn", Password: "admin123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@smartwarehouse.tn", Password: "wrong",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeFactory{uow: newFakeUnitOfWork()})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "ghost@smartwarehouse.tn", Password: "x",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestRegisterStaffDuplicateEmail(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := NewAuthService(&fakeFactory{uow: uow})

	_, err := svc.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email: "admin@smartwarehouse.tn", Password: "admin123",
	})
	require.NoError(t, err)

	_, err = svc.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Email: "admin@smartwarehouse.tn", Password: "other",
	})
	assert.EqualError(t, err, "email already registered")
	assert.Len(t, uow.users.users, 1)
}
