package handlers

import (
	"context"

	videodb "TagHub.com/cmd/video/dal/db"
	"TagHub.com/cmd/video/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Feed 个性化视频流 已登录时关注的创作者内容优先
func Feed(ctx context.Context, c *app.RequestContext) {
	var req struct {
		Category  string `query:"category"`
		Title     string `query:"title"`
		Kind      string `query:"kind"`
		CreatorId int64  `query:"creator_id"`
		BrandId   int64  `query:"brand_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	filter := &videodb.VideoFilter{
		Category:  req.Category,
		Title:     req.Title,
		Kind:      req.Kind,
		CreatorId: req.CreatorId,
		BrandId:   req.BrandId,
	}
	videos, err := service.NewFeedListService(ctx).RankFeed(filter, jwt.CallerId(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

// Leaderboard 创作者榜单
func Leaderboard(ctx context.Context, c *app.RequestContext) {
	entries, err := service.NewLeaderboardService(ctx).GetLeaderboard()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, entries)
}
