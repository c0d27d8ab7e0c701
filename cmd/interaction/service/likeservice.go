package service

import (
	"context"
	"time"

	"TagHub.com/cmd/interaction/dal/db"
	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/mq"
	"github.com/google/uuid"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// LikeResult 切换后的状态
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// ToggleLike 点赞开关 已点则取消 未点则新增
// 成员增删走唯一键原子写 并发切换互不丢失
func (s *LikeService) ToggleLike(videoId, userId int64) (*LikeResult, error) {
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if video == nil {
		return nil, errno.NotFoundErr
	}

	added, err := db.AddLike(s.ctx, videoId, userId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	action := mq.ActionLike
	if !added {
		// 已存在 本次是取消
		if _, err := db.RemoveLike(s.ctx, videoId, userId); err != nil {
			return nil, errno.MysqlErr
		}
		action = mq.ActionUnlike
	}

	count, err := db.GetLikeCount(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}

	mq.Publish(s.ctx, &mq.EngagementEvent{
		UserID:     userId,
		VideoID:    videoId,
		CreatorID:  video.CreatorId,
		ActionType: action,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.NewString(),
	})
	return &LikeResult{Liked: added, LikeCount: count}, nil
}

// LikeStatus 点赞总况 含调用者自己的点赞状态
type LikeStatus struct {
	LikeCount int64   `json:"like_count"`
	Liked     bool    `json:"liked"`
	LikerIds  []int64 `json:"liker_ids"`
}

func (s *LikeService) VideoLikes(videoId, callerId int64) (*LikeStatus, error) {
	video, err := videodb.GetVideo(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if video == nil {
		return nil, errno.NotFoundErr
	}
	likers, err := db.GetLikerIds(s.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	status := &LikeStatus{LikeCount: int64(len(likers)), LikerIds: likers}
	for _, id := range likers {
		if id == callerId {
			status.Liked = true
			break
		}
	}
	return status, nil
}

func (s *LikeService) IsLiked(videoId, userId int64) (bool, error) {
	liked, err := db.IsLiked(s.ctx, videoId, userId)
	if err != nil {
		return false, errno.MysqlErr
	}
	return liked, nil
}
