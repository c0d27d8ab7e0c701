package handlers

import (
	"context"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Register 注册新账号
func Register(ctx context.Context, c *app.RequestContext) {
	var req service.CreateUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	user, err := service.NewCreateUserService(ctx).CreateUser(&req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user.Info())
}
