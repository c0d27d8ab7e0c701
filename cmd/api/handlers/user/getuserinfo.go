package handlers

import (
	"context"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetUserInfo 查询档案 不带user_id时返回调用者自己的
func GetUserInfo(ctx context.Context, c *app.RequestContext) {
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
	info, err := service.NewGetUserInfoService(ctx).GetUserInfo(req.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}
