package handlers

import (
	"context"
	"io"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateUser 更新调用者自己的档案字段
func UpdateUser(ctx context.Context, c *app.RequestContext) {
	var req service.UpdateUserRequest
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	req.UserId = jwt.CallerId(ctx, c)
	info, err := service.NewUpdateUserService(ctx).UpdateUser(&req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}

// UploadAvatar 头像上传 multipart字段avatar
func UploadAvatar(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("avatar")
	if err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}

	info, err := service.NewUpdateUserService(ctx).UpdateAvatar(
		jwt.CallerId(ctx, c), data, file.Header.Get("Content-Type"))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}
