package service

import (
	"context"
	"fmt"
	"testing"

	"TagHub.com/cmd/model"
	relationdb "TagHub.com/cmd/relation/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRelationDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}, &model.Follow{}))
	relationdb.DB = gdb
	userdb.DB = gdb
}

func seedUser(t *testing.T, id int64, role string) {
	err := userdb.CreateUser(context.Background(), &model.User{
		UserId: id, Name: fmt.Sprintf("user%d", id), Email: fmt.Sprintf("u%d@test.com", id), Role: role,
	})
	require.NoError(t, err)
}

func TestFollowIdempotent(t *testing.T) {
	setupRelationDB(t)
	ctx := context.Background()
	seedUser(t, 1, "brand")
	seedUser(t, 2, "creator")
	svc := NewRelationService(ctx)

	require.NoError(t, svc.Follow(1, 2))
	following, err := svc.IsFollowing(1, 2)
	require.NoError(t, err)
	assert.True(t, following)

	// 重复关注不报错也不产生第二条边
	require.NoError(t, svc.Follow(1, 2))
	counts, err := svc.FollowCounts(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Followers)
}

func TestUnfollow(t *testing.T) {
	setupRelationDB(t)
	ctx := context.Background()
	seedUser(t, 1, "brand")
	seedUser(t, 2, "creator")
	svc := NewRelationService(ctx)

	require.NoError(t, svc.Follow(1, 2))
	require.NoError(t, svc.Unfollow(1, 2))
	following, err := svc.IsFollowing(1, 2)
	require.NoError(t, err)
	assert.False(t, following)

	// 未关注时取关幂等成功
	require.NoError(t, svc.Unfollow(1, 2))
}

func TestSelfFollowRejected(t *testing.T) {
	setupRelationDB(t)
	seedUser(t, 1, "creator")
	err := NewRelationService(context.Background()).Follow(1, 1)
	assert.Error(t, err)
}

func TestFollowUnknownUser(t *testing.T) {
	setupRelationDB(t)
	seedUser(t, 1, "brand")
	err := NewRelationService(context.Background()).Follow(1, 99)
	assert.Error(t, err)
}

func TestFollowerListReverseLookup(t *testing.T) {
	setupRelationDB(t)
	ctx := context.Background()
	seedUser(t, 1, "brand")
	seedUser(t, 2, "brand")
	seedUser(t, 3, "creator")
	svc := NewRelationService(ctx)
	require.NoError(t, svc.Follow(1, 3))
	require.NoError(t, svc.Follow(2, 3))

	followers, err := NewFollowListService(ctx).FollowerList(3)
	require.NoError(t, err)
	ids := make([]int64, 0, len(followers))
	for _, f := range followers {
		ids = append(ids, f.UserId)
	}
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	following, err := NewFollowListService(ctx).FollowingList(1)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, int64(3), following[0].UserId)
}
