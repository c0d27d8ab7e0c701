package service

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/relation/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/errno"
)

type FollowListService struct {
	ctx context.Context
}

func NewFollowListService(ctx context.Context) *FollowListService {
	return &FollowListService{ctx: ctx}
}

// FollowingList 关注列表 带档案信息
func (service *FollowListService) FollowingList(userId int64) ([]*model.UserInfo, error) {
	ids, err := db.GetFollowingList(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return service.profiles(ids)
}

// FollowerList 粉丝列表 由反向查询得到
func (service *FollowListService) FollowerList(userId int64) ([]*model.UserInfo, error) {
	ids, err := db.GetFollowerList(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return service.profiles(ids)
}

func (service *FollowListService) profiles(ids []int64) ([]*model.UserInfo, error) {
	users, err := userdb.GetUsersByIds(service.ctx, ids)
	if err != nil {
		return nil, errno.MysqlErr
	}
	infos := make([]*model.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, u.Info())
	}
	return infos, nil
}
