package handlers

import (
	"context"

	"TagHub.com/cmd/interaction/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// PostComment 发表评论
func PostComment(ctx context.Context, c *app.RequestContext) {
	var req struct {
		VideoId int64  `json:"video_id" form:"video_id"`
		Text    string `json:"text" form:"text"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	comment, err := service.NewCommentService(ctx).PostComment(req.VideoId, jwt.CallerId(ctx, c), req.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

// ListComments 评论列表 带作者信息
func ListComments(ctx context.Context, c *app.RequestContext) {
	var req struct {
		VideoId int64 `query:"video_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	comments, err := service.NewCommentService(ctx).ListComments(req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comments)
}

// DeleteComment 删除评论
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var req struct {
		CommentId int64 `json:"comment_id" query:"comment_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	err := service.NewCommentService(ctx).DeleteComment(
		req.CommentId, jwt.CallerId(ctx, c), jwt.CallerRole(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
