package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"TagHub.com/cmd/model"
	relationdb "TagHub.com/cmd/relation/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	videodb "TagHub.com/cmd/video/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupVideoDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&model.User{}, &model.Follow{}, &model.Video{}, &model.VideoLike{}, &model.Comment{}))
	videodb.DB = gdb
	relationdb.DB = gdb
	userdb.DB = gdb
}

func seedCreator(t *testing.T, id int64) {
	err := userdb.CreateUser(context.Background(), &model.User{
		UserId: id, Name: fmt.Sprintf("creator%d", id),
		Email: fmt.Sprintf("c%d@test.com", id), Role: "creator",
	})
	require.NoError(t, err)
}

func seedVideo(t *testing.T, id, creatorId int64, createdAt time.Time) {
	err := videodb.InsertVideo(context.Background(), &model.Video{
		VideoId: id, CreatorId: creatorId, Title: fmt.Sprintf("video %d", id),
		Category: "tech", Kind: "video", CreatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestRankFeedFollowedFirst(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 观众V只关注创作者X X有t1<t2两条 其他人有t3<t4<t5三条 且都晚于t2
	seedCreator(t, 10) // viewer
	seedCreator(t, 1)  // X
	seedCreator(t, 2)
	seedCreator(t, 3)
	require.NoError(t, relationdb.CreateFollow(ctx, 10, 1))

	seedVideo(t, 101, 1, base.Add(1*time.Hour)) // t1
	seedVideo(t, 102, 1, base.Add(2*time.Hour)) // t2
	seedVideo(t, 103, 2, base.Add(3*time.Hour)) // t3
	seedVideo(t, 104, 3, base.Add(4*time.Hour)) // t4
	seedVideo(t, 105, 2, base.Add(5*time.Hour)) // t5

	feed, err := NewFeedListService(ctx).RankFeed(&videodb.VideoFilter{Kind: "video"}, 10)
	require.NoError(t, err)
	require.Len(t, feed, 5)

	got := make([]int64, 0, len(feed))
	for _, v := range feed {
		got = append(got, v.VideoId)
	}
	assert.Equal(t, []int64{102, 101, 105, 104, 103}, got)
}

func TestRankFeedBrandVideoTrailsFollowed(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 品牌自发视频无创作者 即使最新也排在关注段之后
	seedCreator(t, 10) // viewer
	seedCreator(t, 1)
	require.NoError(t, relationdb.CreateFollow(ctx, 10, 1))

	seedVideo(t, 101, 1, base.Add(1*time.Hour))
	err := videodb.InsertVideo(ctx, &model.Video{
		VideoId: 301, BrandId: 7, Title: "brand promo",
		Category: "tech", Kind: "video", CreatedAt: base.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	feed, err := NewFeedListService(ctx).RankFeed(&videodb.VideoFilter{Kind: "video"}, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(101), feed[0].VideoId)
	assert.Equal(t, int64(301), feed[1].VideoId)
}

func TestRankFeedNoViewerKeepsGlobalOrder(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedCreator(t, 1)
	seedCreator(t, 2)
	seedVideo(t, 101, 1, base.Add(1*time.Hour))
	seedVideo(t, 102, 2, base.Add(2*time.Hour))

	feed, err := NewFeedListService(ctx).RankFeed(nil, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(102), feed[0].VideoId)
	assert.Equal(t, int64(101), feed[1].VideoId)
}

func TestRankFeedFilterMatchesAll(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedCreator(t, 1)
	seedVideo(t, 101, 1, base)
	err := videodb.InsertVideo(ctx, &model.Video{
		VideoId: 201, CreatorId: 1, Title: "cooking", Category: "food", Kind: "short", CreatedAt: base,
	})
	require.NoError(t, err)

	feed, err := NewFeedListService(ctx).RankFeed(&videodb.VideoFilter{Category: "TECH"}, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, int64(101), feed[0].VideoId)
}
