package service

import (
	"context"
	"strconv"
	"time"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/oss"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

type UpdateUserRequest struct {
	UserId      int64  `json:"user_id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Bio         string `json:"bio"`
	Topic       string `json:"topic"`
}

func (v *UpdateUserService) UpdateUser(req *UpdateUserRequest) (*model.UserInfo, error) {
	user, err := db.GetUser(v.ctx, req.UserId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if user == nil {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.CompanyName != "" {
		user.CompanyName = req.CompanyName
	}
	if req.Website != "" {
		user.Website = req.Website
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Topic != "" {
		user.Topic = req.Topic
	}
	user.UpdatedAt = time.Now()

	if err := db.UpdateUser(v.ctx, user); err != nil {
		return nil, errno.MysqlErr
	}
	return user.Info(), nil
}

// UpdateAvatar 上传新头像并更新档案
func (v *UpdateUserService) UpdateAvatar(userId int64, data []byte, contentType string) (*model.UserInfo, error) {
	if len(data) == 0 {
		return nil, errno.RequestErr
	}
	user, err := db.GetUser(v.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if user == nil {
		return nil, errno.NotFoundErr
	}
	obj, err := oss.UploadAvatar(v.ctx, strconv.FormatInt(userId, 10), data, contentType)
	if err != nil {
		return nil, errno.OssErr
	}
	if err := db.UpdateUserImage(v.ctx, userId, obj.Url); err != nil {
		return nil, errno.MysqlErr
	}
	user.Image = obj.Url
	return user.Info(), nil
}
