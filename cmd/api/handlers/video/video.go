package handlers

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/video/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type videoIdParam struct {
	VideoId int64 `query:"video_id" json:"video_id"`
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var req videoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	video, err := service.NewVideoListService(ctx).GetVideo(req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// Visit 记录播放并返回最新播放数
func Visit(ctx context.Context, c *app.RequestContext) {
	var req videoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	views, err := service.NewVideoVisitService(ctx).Visit(req.VideoId, jwt.CallerId(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"views": views})
}

// DeleteVideo 删除视频 作者或管理员
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var req videoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	err := service.NewDeleteVideoService(ctx).Delete(
		req.VideoId, jwt.CallerId(ctx, c), jwt.CallerRole(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// UserVideos 用户主页长视频
func UserVideos(ctx context.Context, c *app.RequestContext) {
	userVideoList(ctx, c, service.NewVideoListService(ctx).UserVideos)
}

// UserShorts 用户主页短视频
func UserShorts(ctx context.Context, c *app.RequestContext) {
	userVideoList(ctx, c, service.NewVideoListService(ctx).UserShorts)
}

func userVideoList(ctx context.Context, c *app.RequestContext, fetch func(int64) ([]*model.Video, error)) {
	var req struct {
		UserId int64 `query:"user_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if req.UserId == 0 {
		req.UserId = jwt.CallerId(ctx, c)
	}
	videos, err := fetch(req.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

// RelatedVideos 同类目推荐
func RelatedVideos(ctx context.Context, c *app.RequestContext) {
	var req videoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	videos, err := service.NewVideoListService(ctx).RelatedVideos(req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
