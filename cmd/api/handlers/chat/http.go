package chat

import (
	"context"

	"TagHub.com/cmd/message/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChatSummaries 会话列表 每个聊过天的对端一条
func ChatSummaries(ctx context.Context, c *app.RequestContext) {
	summaries, err := service.NewMessageService(ctx).ChatSummaries(jwt.CallerId(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, summaries)
}

// Conversation 与指定对端的完整消息流
func Conversation(ctx context.Context, c *app.RequestContext) {
	var req struct {
		CounterpartId int64 `query:"counterpart_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	messages, err := service.NewMessageService(ctx).Conversation(jwt.CallerId(ctx, c), req.CounterpartId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, messages)
}

// SendMessage http兜底发送 不走websocket的客户端用
func SendMessage(ctx context.Context, c *app.RequestContext) {
	var req Message
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	message, err := service.NewMessageService(ctx).SendMessage(
		jwt.CallerId(ctx, c), req.ToUserId, req.Text, req.Kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, message)
}
