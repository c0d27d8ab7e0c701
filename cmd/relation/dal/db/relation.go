package db

import (
	"context"
	"time"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// CreateFollow 幂等 重复关注不报错
// 唯一键(follower_id, followee_id)把集合添加压成单条原子插入
func CreateFollow(ctx context.Context, followerId, followeeId int64) error {
	f := &model.Follow{
		FollowerId: followerId,
		FolloweeId: followeeId,
		CreatedAt:  time.Now(),
	}
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error; err != nil {
		return errors.Wrapf(err, "CreateFollow failed,err: %v", err)
	}
	return nil
}

// DeleteFollow 幂等移除
func DeleteFollow(ctx context.Context, followerId, followeeId int64) error {
	if err := DB.WithContext(ctx).Where("follower_id = ? AND followee_id = ?", followerId, followeeId).
		Delete(&model.Follow{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteFollow failed,err: %v", err)
	}
	return nil
}

func IsFollowing(ctx context.Context, followerId, followeeId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerId, followeeId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsFollowing failed,err: %v", err)
	}
	return count > 0, nil
}

// GetFollowingList 用户关注的全部账号id
func GetFollowingList(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).
		Select("followee_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetFollowingList failed,err: %v", err)
	}
	return list, nil
}

// GetFollowerList 关注该用户的账号id 即反向查询
func GetFollowerList(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId).
		Select("follower_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetFollowerList failed,err: %v", err)
	}
	return list, nil
}

func GetFollowingCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userId).
		Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "GetFollowingCount failed,err: %v", err)
	}
	return count, nil
}

func GetFollowerCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Follow{}).Where("followee_id = ?", userId).
		Count(&count).Error; err != nil {
		return -1, errors.Wrapf(err, "GetFollowerCount failed,err: %v", err)
	}
	return count, nil
}
