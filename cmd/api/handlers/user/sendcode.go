package handlers

import (
	"context"

	"TagHub.com/cmd/user/service"
	"TagHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// SendCode 发送邮箱验证码
func SendCode(ctx context.Context, c *app.RequestContext) {
	var req struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if err := service.NewSendCodeService(ctx).SendCode(req.Email); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// VerifyCode 校验邮箱验证码 校验通过即消费
func VerifyCode(ctx context.Context, c *app.RequestContext) {
	var req struct {
		Email string `json:"email" form:"email"`
		Code  string `json:"code" form:"code"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if err := service.NewVerifyCodeService(ctx).VerifyCode(req.Email, req.Code); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
