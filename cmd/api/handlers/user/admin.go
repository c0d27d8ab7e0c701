package handlers

import (
	"context"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// QueryUsers 管理端用户检索
func QueryUsers(ctx context.Context, c *app.RequestContext) {
	if jwt.CallerRole(ctx, c) != constants.RoleAdmin {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	var req service.QueryUsersRequest
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	users, err := service.NewQueryUsersService(ctx).QueryUsers(&req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, users)
}

// RegistrationsGraph 管理端注册增长曲线
func RegistrationsGraph(ctx context.Context, c *app.RequestContext) {
	if jwt.CallerRole(ctx, c) != constants.RoleAdmin {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	points, err := service.NewQueryUsersService(ctx).RegistrationsGraph()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, points)
}

// TotalStats 管理端仪表盘总量
func TotalStats(ctx context.Context, c *app.RequestContext) {
	if jwt.CallerRole(ctx, c) != constants.RoleAdmin {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	stats, err := service.NewQueryUsersService(ctx).TotalStats()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}
