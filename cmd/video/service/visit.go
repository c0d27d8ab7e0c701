package service

import (
	"context"
	"time"

	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/mq"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoVisitService struct {
	ctx context.Context
}

func NewVideoVisitService(ctx context.Context) *VideoVisitService {
	return &VideoVisitService{ctx: ctx}
}

// Visit 记录一次播放 返回自增后的播放数
func (v *VideoVisitService) Visit(videoId, viewerId int64) (int64, error) {
	views, err := db.AddVideoVisit(v.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errno.NotFoundErr
		}
		return 0, errno.MysqlErr
	}

	video, err := db.GetVideo(v.ctx, videoId)
	if err == nil && video != nil {
		mq.Publish(v.ctx, &mq.EngagementEvent{
			UserID:     viewerId,
			VideoID:    videoId,
			CreatorID:  video.CreatorId,
			ActionType: mq.ActionView,
			Timestamp:  time.Now().Unix(),
			EventID:    uuid.NewString(),
		})
	}
	return views, nil
}
