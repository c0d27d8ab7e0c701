package service

import (
	"context"

	"TagHub.com/cmd/model"
	relationdb "TagHub.com/cmd/relation/dal/db"
	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/errno"
)

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

// RankFeed 个性化视频流
// 不带viewer时按发布时间倒序返回全部命中项
// 带viewer时把命中项切成两段：已关注创作者的内容整体置顶 段内各自保持倒序
// 这是两级优先排序 不是单一全局排序键
func (v *FeedListService) RankFeed(filter *db.VideoFilter, viewerId int64) ([]*model.Video, error) {
	videos, err := db.QueryVideos(v.ctx, filter)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if viewerId == 0 {
		return videos, nil
	}

	followingIds, err := relationdb.GetFollowingList(v.ctx, viewerId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	following := make(map[int64]struct{}, len(followingIds))
	for _, id := range followingIds {
		following[id] = struct{}{}
	}

	// 单次遍历保持段内相对顺序 无创作者的条目归入后段
	followed := make([]*model.Video, 0)
	others := make([]*model.Video, 0, len(videos))
	for _, video := range videos {
		if video.CreatorId != 0 {
			if _, ok := following[video.CreatorId]; ok {
				followed = append(followed, video)
				continue
			}
		}
		others = append(others, video)
	}
	return append(followed, others...), nil
}
