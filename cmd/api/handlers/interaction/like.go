package handlers

import (
	"context"

	"TagHub.com/cmd/interaction/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// ToggleLike 点赞开关
func ToggleLike(ctx context.Context, c *app.RequestContext) {
	var req struct {
		VideoId int64 `json:"video_id" form:"video_id" query:"video_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	result, err := service.NewLikeService(ctx).ToggleLike(req.VideoId, jwt.CallerId(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, result)
}

// VideoLikes 点赞总况
func VideoLikes(ctx context.Context, c *app.RequestContext) {
	var req struct {
		VideoId int64 `query:"video_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	status, err := service.NewLikeService(ctx).VideoLikes(req.VideoId, jwt.CallerId(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, status)
}
