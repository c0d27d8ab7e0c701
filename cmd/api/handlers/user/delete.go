package handlers

import (
	"context"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// DeleteUser 注销账号 本人或管理员
func DeleteUser(ctx context.Context, c *app.RequestContext) {
	var req struct {
		UserId int64 `json:"user_id" query:"user_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	callerId := jwt.CallerId(ctx, c)
	if req.UserId == 0 {
		req.UserId = callerId
	}
	if err := service.NewDeleteUserService(ctx).DeleteUser(callerId, req.UserId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
