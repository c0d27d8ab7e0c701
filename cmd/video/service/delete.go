package service

import (
	"context"

	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/oss"
	"github.com/sirupsen/logrus"
)

type DeleteVideoService struct {
	ctx context.Context
}

func NewDeleteVideoService(ctx context.Context) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx}
}

// Delete 删除视频 仅作者或管理员可操作 成功后回收对象存储文件
func (v *DeleteVideoService) Delete(videoId, callerId int64, callerRole string) error {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return errno.MysqlErr
	}
	if video == nil {
		return errno.NotFoundErr
	}
	owner := video.CreatorId == callerId || video.BrandId == callerId
	if !owner && callerRole != constants.RoleAdmin {
		return errno.AuthorizationFailedErr
	}

	if err := db.DeleteVideo(v.ctx, videoId); err != nil {
		return errno.MysqlErr
	}
	// 对象回收失败不回滚库删除 但必须把失败暴露给调用方 留待人工清理
	var releaseErr error
	for _, objectId := range []string{video.VideoObject, video.ThumbnailObject} {
		if err := oss.DeleteByObjectId(v.ctx, objectId); err != nil {
			logrus.Warnf("failed to delete object %s: %v", objectId, err)
			releaseErr = err
		}
	}
	if releaseErr != nil {
		return errno.OssErr.WithMessage("video removed but media cleanup failed")
	}
	return nil
}
