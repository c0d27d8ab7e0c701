package service

import (
	"context"

	"TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type DeleteUserService struct {
	ctx context.Context
}

func NewDeleteUserService(ctx context.Context) *DeleteUserService {
	return &DeleteUserService{ctx: ctx}
}

// DeleteUser 账号注销 本人或管理员可操作
func (v *DeleteUserService) DeleteUser(callerId, targetId int64) error {
	if callerId != targetId {
		caller, err := db.GetUser(v.ctx, callerId)
		if err != nil {
			return errno.MysqlErr
		}
		if caller == nil || caller.Role != constants.RoleAdmin {
			return errno.AuthorizationFailedErr.WithMessage("only the account owner or an admin may delete it")
		}
	}
	if err := db.DeleteUser(v.ctx, targetId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("user not found")
		}
		return errno.MysqlErr
	}
	return nil
}
