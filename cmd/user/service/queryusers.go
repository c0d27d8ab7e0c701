package service

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/user/dal/db"
	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
)

type QueryUsersService struct {
	ctx context.Context
}

func NewQueryUsersService(ctx context.Context) *QueryUsersService {
	return &QueryUsersService{ctx: ctx}
}

type QueryUsersRequest struct {
	Role  string `query:"role"`
	Name  string `query:"name"`
	Topic string `query:"topic"`
	Email string `query:"email"`
}

// QueryUsers 管理端用户列表
func (v *QueryUsersService) QueryUsers(req *QueryUsersRequest) ([]*model.UserInfo, error) {
	users, err := db.QueryUsers(v.ctx, req.Role, req.Name, req.Topic, req.Email)
	if err != nil {
		return nil, errno.MysqlErr
	}
	infos := make([]*model.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}
	return infos, nil
}

// RegistrationsGraph 管理端注册增长曲线 按天聚合
func (v *QueryUsersService) RegistrationsGraph() ([]*db.RegistrationPoint, error) {
	points, err := db.CountRegistrationsByDay(v.ctx)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return points, nil
}

type TotalStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalCreators int64 `json:"total_creators"`
	TotalBrands   int64 `json:"total_brands"`
	TotalVideos   int64 `json:"total_videos"`
	TotalShorts   int64 `json:"total_shorts"`
}

// TotalStats 管理端仪表盘总量统计
func (v *QueryUsersService) TotalStats() (*TotalStats, error) {
	stats := &TotalStats{}
	var err error
	if stats.TotalUsers, err = db.CountUsersByRole(v.ctx, ""); err != nil {
		return nil, errno.MysqlErr
	}
	if stats.TotalCreators, err = db.CountUsersByRole(v.ctx, constants.RoleCreator); err != nil {
		return nil, errno.MysqlErr
	}
	if stats.TotalBrands, err = db.CountUsersByRole(v.ctx, constants.RoleBrand); err != nil {
		return nil, errno.MysqlErr
	}
	if stats.TotalVideos, err = videodb.CountVideosByKind(v.ctx, constants.VideoKindVideo); err != nil {
		return nil, errno.MysqlErr
	}
	if stats.TotalShorts, err = videodb.CountVideosByKind(v.ctx, constants.VideoKindShort); err != nil {
		return nil, errno.MysqlErr
	}
	return stats, nil
}
