package db

import (
	"context"
	"time"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm/clause"
)

// AddLike 点赞 唯一键冲突视为已点过 返回是否新增
func AddLike(ctx context.Context, videoId, userId int64) (bool, error) {
	like := &model.VideoLike{
		VideoId:   videoId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "AddLike failed,err: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RemoveLike 取消点赞 返回是否确有删除
func RemoveLike(ctx context.Context, videoId, userId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("video_id = ? AND user_id = ?", videoId, userId).
		Delete(&model.VideoLike{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "RemoveLike failed,err: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func IsLiked(ctx context.Context, videoId, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ? AND user_id = ?", videoId, userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsLiked failed,err: %v", err)
	}
	return count > 0, nil
}

func GetLikeCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetLikeCount failed,err: %v", err)
	}
	return count, nil
}

// GetLikerIds 视频的点赞用户列表 按点赞时间正序
func GetLikerIds(ctx context.Context, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).Order("created_at ASC").
		Select("user_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetLikerIds failed,err: %v", err)
	}
	return list, nil
}
