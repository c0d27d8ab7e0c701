package service

import (
	"context"
	"sort"

	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/cache"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"github.com/sirupsen/logrus"
)

// LeaderboardCache 榜单快照缓存 为nil时每次请求直接全量聚合
var LeaderboardCache *cache.LeaderboardCacheManager

func InitLeaderboardCache(cm *cache.LeaderboardCacheManager) {
	LeaderboardCache = cm
}

type LeaderboardService struct {
	ctx context.Context
}

func NewLeaderboardService(ctx context.Context) *LeaderboardService {
	return &LeaderboardService{ctx: ctx}
}

// GetLeaderboard 创作者榜单
// 积分 = 播放*1 + 点赞*2 + 评论*3 低于10分不上榜 最多50条
// 快照整体缓存 未命中时持锁重算 防止并发全量聚合
func (v *LeaderboardService) GetLeaderboard() ([]*model.LeaderboardEntry, error) {
	if LeaderboardCache != nil {
		cached, err := LeaderboardCache.GetCachedLeaderboard(v.ctx)
		if err != nil {
			logrus.Warnf("leaderboard cache read failed: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	var entries []*model.LeaderboardEntry
	compute := func() error {
		var err error
		entries, err = v.compute()
		return err
	}
	if LeaderboardCache != nil {
		if err := LeaderboardCache.WithRecomputeLock(v.ctx, compute); err != nil {
			// 锁竞争失败时降级为无锁重算 榜单可用性优先
			logrus.Warnf("leaderboard recompute lock failed: %v", err)
			if err := compute(); err != nil {
				return nil, err
			}
		}
		if err := LeaderboardCache.CacheLeaderboard(v.ctx, entries); err != nil {
			logrus.Warnf("leaderboard cache write failed: %v", err)
		}
		return entries, nil
	}
	if err := compute(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (v *LeaderboardService) compute() ([]*model.LeaderboardEntry, error) {
	creatorIds, err := userdb.GetCreatorIds(v.ctx)
	if err != nil {
		return nil, errno.MysqlErr
	}
	engagement, err := db.GetCreatorEngagement(v.ctx)
	if err != nil {
		return nil, errno.MysqlErr
	}
	creators, err := userdb.GetUsersByIds(v.ctx, creatorIds)
	if err != nil {
		return nil, errno.MysqlErr
	}
	names := make(map[int64]string, len(creators))
	for _, u := range creators {
		names[u.UserId] = u.Name
	}

	entries := make([]*model.LeaderboardEntry, 0, len(creatorIds))
	for _, id := range creatorIds {
		entry := &model.LeaderboardEntry{CreatorId: id, Name: names[id]}
		if e, ok := engagement[id]; ok {
			entry.TotalViews = e.TotalViews
			entry.TotalLikes = e.TotalLikes
			entry.TotalComments = e.TotalComments
		}
		entry.TotalPoints = entry.TotalViews*constants.LeaderboardViewWeight +
			entry.TotalLikes*constants.LeaderboardLikeWeight +
			entry.TotalComments*constants.LeaderboardCommentWeight
		if entry.TotalPoints < constants.LeaderboardMinPoints {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].CreatorId < entries[j].CreatorId
	})
	if len(entries) > constants.LeaderboardSize {
		entries = entries[:constants.LeaderboardSize]
	}
	return entries, nil
}
