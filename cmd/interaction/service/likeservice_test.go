package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	interactiondb "TagHub.com/cmd/interaction/dal/db"
	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	videodb "TagHub.com/cmd/video/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInteractionDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&model.User{}, &model.Video{}, &model.VideoLike{}, &model.Comment{}))
	interactiondb.DB = gdb
	videodb.DB = gdb
	userdb.DB = gdb
}

func seedUser(t *testing.T, id int64, role string) {
	err := userdb.CreateUser(context.Background(), &model.User{
		UserId: id, Name: fmt.Sprintf("user%d", id),
		Email: fmt.Sprintf("u%d@test.com", id), Role: role,
	})
	require.NoError(t, err)
}

func seedVideo(t *testing.T, videoId, creatorId int64) {
	err := videodb.InsertVideo(context.Background(), &model.Video{
		VideoId: videoId, CreatorId: creatorId, Title: "video",
		Category: "tech", Kind: "video", CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestToggleLikeInvolution(t *testing.T) {
	setupInteractionDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedUser(t, 2, "brand")
	seedVideo(t, 101, 1)
	svc := NewLikeService(ctx)

	first, err := svc.ToggleLike(101, 2)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, int64(1), first.LikeCount)

	// 同一用户再切一次 回到初始状态
	second, err := svc.ToggleLike(101, 2)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.LikeCount)

	liked, err := svc.IsLiked(101, 2)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLikeTwoUsers(t *testing.T) {
	setupInteractionDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedUser(t, 2, "brand")
	seedUser(t, 3, "brand")
	seedVideo(t, 101, 1)
	svc := NewLikeService(ctx)

	_, err := svc.ToggleLike(101, 2)
	require.NoError(t, err)
	result, err := svc.ToggleLike(101, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.LikeCount)
}

func TestToggleLikeUnknownVideo(t *testing.T) {
	setupInteractionDB(t)
	seedUser(t, 2, "brand")
	_, err := NewLikeService(context.Background()).ToggleLike(999, 2)
	assert.Error(t, err)
}

func TestPostAndListComments(t *testing.T) {
	setupInteractionDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedUser(t, 2, "brand")
	seedVideo(t, 101, 1)
	svc := NewCommentService(ctx)

	_, err := svc.PostComment(101, 2, "first")
	require.NoError(t, err)
	_, err = svc.PostComment(101, 1, "second")
	require.NoError(t, err)

	comments, err := svc.ListComments(101)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "user1", comments[0].UserName)
	assert.Equal(t, "user2", comments[1].UserName)
}

func TestPostCommentValidation(t *testing.T) {
	setupInteractionDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedVideo(t, 101, 1)
	svc := NewCommentService(ctx)

	_, err := svc.PostComment(101, 1, "   ")
	assert.Error(t, err)
	_, err = svc.PostComment(999, 1, "hello")
	assert.Error(t, err)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	setupInteractionDB(t)
	ctx := context.Background()
	seedUser(t, 1, "creator")
	seedUser(t, 2, "brand")
	seedUser(t, 3, "brand")
	seedVideo(t, 101, 1)
	svc := NewCommentService(ctx)

	comment, err := svc.PostComment(101, 2, "hello")
	require.NoError(t, err)

	// 路人不能删
	err = svc.DeleteComment(comment.CommentId, 3, "brand")
	assert.Error(t, err)
	// 评论作者可以删
	require.NoError(t, svc.DeleteComment(comment.CommentId, 2, "brand"))

	comment, err = svc.PostComment(101, 2, "again")
	require.NoError(t, err)
	// 视频作者也可以删
	require.NoError(t, svc.DeleteComment(comment.CommentId, 1, "creator"))
}
