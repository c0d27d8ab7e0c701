package service

import (
	"context"
	"strconv"
	"time"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/video/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/oss"
	"TagHub.com/pkg/utils"
	"github.com/sirupsen/logrus"
)

type PublishService struct {
	ctx context.Context
}

func NewPublishService(ctx context.Context) *PublishService {
	return &PublishService{ctx: ctx}
}

// PublishRequest 发布参数 封面可缺省
type PublishRequest struct {
	Title            string
	Description      string
	Category         string
	Kind             string
	VideoData        []byte
	VideoContentType string
	ThumbData        []byte
	ThumbContentType string
}

// Publish 上传文件并落库 对象存储成功但落库失败时回收已上传对象
func (v *PublishService) Publish(userId int64, role string, req *PublishRequest) (*model.Video, error) {
	if req.Title == "" || req.Category == "" || len(req.VideoData) == 0 {
		return nil, errno.RequestErr
	}
	if req.Kind != constants.VideoKindVideo && req.Kind != constants.VideoKindShort {
		return nil, errno.RequestErr
	}
	if role != constants.RoleCreator && role != constants.RoleBrand {
		return nil, errno.AuthorizationFailedErr
	}

	videoId := utils.GenId()
	vid := strconv.FormatInt(videoId, 10)

	videoObj, err := oss.UploadVideo(v.ctx, vid, req.VideoData, req.VideoContentType)
	if err != nil {
		return nil, errno.OssErr
	}
	var thumbObj *oss.StoredObject
	if len(req.ThumbData) > 0 {
		thumbObj, err = oss.UploadThumbnail(v.ctx, vid, req.ThumbData, req.ThumbContentType)
		if err != nil {
			v.release(videoObj.ObjectId)
			return nil, errno.OssErr
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Kind:        req.Kind,
		VideoUrl:    videoObj.Url,
		VideoObject: videoObj.ObjectId,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if thumbObj != nil {
		video.ThumbnailUrl = thumbObj.Url
		video.ThumbnailObject = thumbObj.ObjectId
	}
	if role == constants.RoleCreator {
		video.CreatorId = userId
	} else {
		video.BrandId = userId
	}

	if err := db.InsertVideo(v.ctx, video); err != nil {
		v.release(videoObj.ObjectId)
		if thumbObj != nil {
			v.release(thumbObj.ObjectId)
		}
		return nil, errno.MysqlErr
	}
	return video, nil
}

func (v *PublishService) release(objectId string) {
	if err := oss.DeleteByObjectId(v.ctx, objectId); err != nil {
		logrus.Warnf("failed to release orphan object %s: %v", objectId, err)
	}
}
