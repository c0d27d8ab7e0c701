package handlers

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/relation/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

type targetParam struct {
	UserId int64 `json:"user_id" form:"user_id" query:"user_id"`
}

// Follow 关注 重复关注幂等
func Follow(ctx context.Context, c *app.RequestContext) {
	var req targetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if err := service.NewRelationService(ctx).Follow(jwt.CallerId(ctx, c), req.UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// Unfollow 取关 未关注时也幂等成功
func Unfollow(ctx context.Context, c *app.RequestContext) {
	var req targetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if err := service.NewRelationService(ctx).Unfollow(jwt.CallerId(ctx, c), req.UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// IsFollowing 查询调用者是否关注目标用户
func IsFollowing(ctx context.Context, c *app.RequestContext) {
	var req targetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	following, err := service.NewRelationService(ctx).IsFollowing(jwt.CallerId(ctx, c), req.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"is_following": following})
}

// FollowCounts 关注/粉丝数
func FollowCounts(ctx context.Context, c *app.RequestContext) {
	var req targetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if req.UserId == 0 {
		req.UserId = jwt.CallerId(ctx, c)
	}
	counts, err := service.NewRelationService(ctx).FollowCounts(req.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, counts)
}

// FollowingList 关注列表
func FollowingList(ctx context.Context, c *app.RequestContext) {
	followList(ctx, c, service.NewFollowListService(ctx).FollowingList)
}

// FollowerList 粉丝列表
func FollowerList(ctx context.Context, c *app.RequestContext) {
	followList(ctx, c, service.NewFollowListService(ctx).FollowerList)
}

func followList(ctx context.Context, c *app.RequestContext, fetch func(int64) ([]*model.UserInfo, error)) {
	var req targetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if req.UserId == 0 {
		req.UserId = jwt.CallerId(ctx, c)
	}
	users, err := fetch(req.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, users)
}
