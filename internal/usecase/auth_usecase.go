package usecase

import (
	"context"
	"errors"

	"athlete-portal/internal/domain/user"
	"athlete-portal/internal/pkg/jwt"
	ucauth "athlete-portal/internal/usecase/auth"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(users), jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.GenerateSessionToken(usr.ID, usr.Email)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return usr, token, nil
}
