package service

import (
	"context"
	"testing"
	"time"

	"TagHub.com/cmd/model"
	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStoredVideo(t *testing.T, videoId, creatorId int64, videoObject string) {
	err := videodb.InsertVideo(context.Background(), &model.Video{
		VideoId: videoId, CreatorId: creatorId, Title: "video",
		Category: "tech", Kind: "video", VideoObject: videoObject,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestDeleteVideoAuthorization(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	seedCreator(t, 1)
	seedStoredVideo(t, 101, 1, "")
	svc := NewDeleteVideoService(ctx)

	assert.Error(t, svc.Delete(101, 2, "brand"))
	require.NoError(t, svc.Delete(101, 1, "creator"))

	video, err := videodb.GetVideo(ctx, 101)
	require.NoError(t, err)
	assert.Nil(t, video)

	assert.Error(t, svc.Delete(101, 1, "creator"))
}

func TestDeleteVideoAdminOverride(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	seedCreator(t, 1)
	seedStoredVideo(t, 101, 1, "")

	require.NoError(t, NewDeleteVideoService(ctx).Delete(101, 99, "admin"))
}

func TestDeleteVideoReportsReleaseFailure(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	seedCreator(t, 1)
	// 畸形objectId让对象回收失败
	seedStoredVideo(t, 101, 1, "not-a-valid-object-id")

	err := NewDeleteVideoService(ctx).Delete(101, 1, "creator")
	require.Error(t, err)
	assert.Equal(t, int64(errno.OssErrCode), errno.ConvertErr(err).ErrCode)

	// 库记录已删除 失败只来自对象回收
	video, dberr := videodb.GetVideo(ctx, 101)
	require.NoError(t, dberr)
	assert.Nil(t, video)
}
