package handlers

import (
	"context"
	"io"
	"mime/multipart"

	"TagHub.com/cmd/video/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func readFormFile(file *multipart.FileHeader) ([]byte, string, error) {
	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, file.Header.Get("Content-Type"), nil
}

// Publish 视频上传 multipart字段video必填 thumbnail可选
func Publish(ctx context.Context, c *app.RequestContext) {
	req := &service.PublishRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Kind:        c.PostForm("kind"),
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if req.VideoData, req.VideoContentType, err = readFormFile(videoFile); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		if req.ThumbData, req.ThumbContentType, err = readFormFile(thumbFile); err != nil {
			SendResponse(c, errno.RequestErr, nil)
			return
		}
	}

	video, err := service.NewPublishService(ctx).Publish(
		jwt.CallerId(ctx, c), jwt.CallerRole(ctx, c), req)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
