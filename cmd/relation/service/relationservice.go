package service

import (
	"context"

	"TagHub.com/cmd/relation/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/errno"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// Follow 关注 幂等 自关注拒绝
func (service *RelationService) Follow(followerId, targetId int64) error {
	if followerId == targetId {
		return errno.ParamErr.WithMessage("cannot follow yourself")
	}
	if err := service.checkBothExist(followerId, targetId); err != nil {
		return err
	}
	if err := db.CreateFollow(service.ctx, followerId, targetId); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// Unfollow 取消关注 幂等
func (service *RelationService) Unfollow(followerId, targetId int64) error {
	if err := service.checkBothExist(followerId, targetId); err != nil {
		return err
	}
	if err := db.DeleteFollow(service.ctx, followerId, targetId); err != nil {
		return errno.MysqlErr
	}
	return nil
}

func (service *RelationService) IsFollowing(followerId, targetId int64) (bool, error) {
	following, err := db.IsFollowing(service.ctx, followerId, targetId)
	if err != nil {
		return false, errno.MysqlErr
	}
	return following, nil
}

type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

func (service *RelationService) FollowCounts(userId int64) (*FollowCounts, error) {
	exists, err := userdb.CheckUserExistById(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	following, err := db.GetFollowingCount(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	followers, err := db.GetFollowerCount(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &FollowCounts{Followers: followers, Following: following}, nil
}

func (service *RelationService) checkBothExist(followerId, targetId int64) error {
	for _, id := range []int64{followerId, targetId} {
		exists, err := userdb.CheckUserExistById(service.ctx, id)
		if err != nil {
			return errno.MysqlErr
		}
		if !exists {
			return errno.NotFoundErr.WithMessage("user not found")
		}
	}
	return nil
}
