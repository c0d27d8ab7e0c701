package db

import (
	"context"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err: %v", err)
	}
	return nil
}

// GetComments 视频评论列表 新评论在前
func GetComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Order("created_at DESC, comment_id DESC").
		Find(&comments).Error; err != nil {
		return nil, errors.Wrapf(err, "GetComments failed,err: %v", err)
	}
	return comments, nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetComment failed,err: %v", err)
	}
	return &comment, nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	result := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteComment failed,err: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func GetCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetCommentCount failed,err: %v", err)
	}
	return count, nil
}
