package service

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
)

const relatedVideoLimit = 10

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

func (v *VideoListService) GetVideo(videoId int64) (*model.Video, error) {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if video == nil {
		return nil, errno.NotFoundErr
	}
	return video, nil
}

// UserVideos 用户主页的长视频列表
func (v *VideoListService) UserVideos(userId int64) ([]*model.Video, error) {
	videos, err := db.GetUserVideos(v.ctx, userId, constants.VideoKindVideo)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return videos, nil
}

// UserShorts 用户主页的短视频列表
func (v *VideoListService) UserShorts(userId int64) ([]*model.Video, error) {
	videos, err := db.GetUserVideos(v.ctx, userId, constants.VideoKindShort)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return videos, nil
}

// RelatedVideos 同类目热门推荐 排除当前视频
func (v *VideoListService) RelatedVideos(videoId int64) ([]*model.Video, error) {
	video, err := db.GetVideo(v.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if video == nil {
		return nil, errno.NotFoundErr
	}
	videos, err := db.GetRelatedVideos(v.ctx, videoId, video.Category, relatedVideoLimit)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return videos, nil
}
