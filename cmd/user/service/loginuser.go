package service

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

func (v *LoginUserService) Login(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("email and password are required")
	}
	user, err := db.GetUserByEmail(v.ctx, email)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if user == nil {
		return nil, errno.AuthorizationFailedErr.WithMessage("invalid credentials")
	}
	if _, ok := utils.VerifyPassword(password, user.Password); !ok {
		return nil, errno.AuthorizationFailedErr.WithMessage("invalid credentials")
	}
	return user, nil
}
