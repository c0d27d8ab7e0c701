package service

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/errno"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

// GetUserInfo 返回不含密码的档案
func (v *GetUserInfoService) GetUserInfo(userId int64) (*model.UserInfo, error) {
	user, err := db.GetUser(v.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	return user.Info(), nil
}
