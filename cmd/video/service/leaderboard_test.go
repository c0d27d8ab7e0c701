package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	interactiondb "TagHub.com/cmd/interaction/dal/db"
	"TagHub.com/cmd/model"
	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEngagement(t *testing.T, videoId, creatorId, views int64, likes, comments int) {
	ctx := context.Background()
	require.NoError(t, videodb.InsertVideo(ctx, &model.Video{
		VideoId: videoId, CreatorId: creatorId, Title: fmt.Sprintf("video %d", videoId),
		Category: "tech", Kind: "video", Views: views, CreatedAt: time.Now(),
	}))
	for i := 0; i < likes; i++ {
		added, err := interactiondb.AddLike(ctx, videoId, int64(1000+i))
		require.NoError(t, err)
		require.True(t, added)
	}
	for i := 0; i < comments; i++ {
		require.NoError(t, interactiondb.CreateComment(ctx, &model.Comment{
			CommentId: videoId*100 + int64(i), VideoId: videoId, UserId: int64(2000 + i),
			Text: "nice", CreatedAt: time.Now(),
		}))
	}
}

func TestLeaderboardScoringAndFloor(t *testing.T) {
	setupVideoDB(t)
	interactiondb.DB = videodb.DB
	ctx := context.Background()

	// C: 5播放 3赞 2评 = 5+6+6 = 17 上榜
	// D: 1播放 0赞 0评 = 1 低于10分 不上榜
	seedCreator(t, 1)
	seedCreator(t, 2)
	seedEngagement(t, 101, 1, 5, 3, 2)
	seedEngagement(t, 102, 2, 1, 0, 0)

	entries, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].CreatorId)
	assert.Equal(t, int64(17), entries[0].TotalPoints)
	assert.Equal(t, int64(5), entries[0].TotalViews)
	assert.Equal(t, int64(3), entries[0].TotalLikes)
	assert.Equal(t, int64(2), entries[0].TotalComments)
	assert.Equal(t, "creator1", entries[0].Name)
}

func TestLeaderboardOrderAndTruncation(t *testing.T) {
	setupVideoDB(t)
	interactiondb.DB = videodb.DB
	ctx := context.Background()

	// 60个创作者 各views=10+i 全部过线 仅保留前50 按分数降序
	for i := int64(1); i <= 60; i++ {
		seedCreator(t, i)
		seedEngagement(t, 100+i, i, 10+i, 0, 0)
	}

	entries, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 50)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
	}
	// 最高分是views=70的创作者60
	assert.Equal(t, int64(60), entries[0].CreatorId)
	assert.Equal(t, int64(70), entries[0].TotalPoints)
	// 分数最低的10个创作者被截断
	assert.Equal(t, int64(21), entries[len(entries)-1].TotalPoints)
}

func TestLeaderboardAggregatesAcrossVideos(t *testing.T) {
	setupVideoDB(t)
	interactiondb.DB = videodb.DB
	ctx := context.Background()

	seedCreator(t, 1)
	seedEngagement(t, 101, 1, 4, 1, 0)
	seedEngagement(t, 102, 1, 3, 0, 1)

	entries, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// 7播放+1赞+1评 = 7 + 2 + 3 = 12
	assert.Equal(t, int64(12), entries[0].TotalPoints)
	assert.Equal(t, int64(7), entries[0].TotalViews)
}

func TestLeaderboardSnapshotCached(t *testing.T) {
	setupVideoDB(t)
	interactiondb.DB = videodb.DB
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	InitLeaderboardCache(cache.NewLeaderboardCacheManager(client))
	defer InitLeaderboardCache(nil)

	seedCreator(t, 1)
	seedEngagement(t, 101, 1, 20, 0, 0)

	first, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// 快照命中 之后的写不影响读到的榜单
	seedEngagement(t, 102, 1, 100, 0, 0)
	second, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].TotalPoints, second[0].TotalPoints)

	// 作废快照后重算看到新数据
	require.NoError(t, LeaderboardCache.Invalidate(ctx))
	third, err := NewLeaderboardService(ctx).GetLeaderboard()
	require.NoError(t, err)
	assert.Equal(t, int64(120), third[0].TotalPoints)
}
