package oss

import (
	"bytes"
	"context"
	"fmt"

	"TagHub.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

const (
	VideoBucket   = "video"
	PictureBucket = "picture"

	location = "us-east-1"
)

// StoredObject 上传成功后返回访问URL与对象标识 删除时只凭objectId
type StoredObject struct {
	Url      string
	ObjectId string
}

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// Upload 上传字节流到指定bucket objectName由调用方生成保证唯一
func Upload(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (*StoredObject, error) {
	if err := ensureBucket(ctx, bucketName); err != nil {
		return nil, err
	}
	_, err := minioClient.PutObject(ctx, bucketName, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logrus.Errorf("Failed to upload object %s/%s: %v", bucketName, objectName, err)
		return nil, err
	}
	return &StoredObject{
		Url:      fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName),
		ObjectId: bucketName + "/" + objectName,
	}, nil
}

// UploadVideo 上传视频文件
func UploadVideo(ctx context.Context, vid string, data []byte, contentType string) (*StoredObject, error) {
	if contentType == "" {
		contentType = "video/mp4"
	}
	return Upload(ctx, VideoBucket, "video/"+vid+"/video.mp4", data, contentType)
}

// UploadThumbnail 上传视频封面
func UploadThumbnail(ctx context.Context, vid string, data []byte, contentType string) (*StoredObject, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return Upload(ctx, PictureBucket, "thumbnail/"+vid+"/cover.jpg", data, contentType)
}

// UploadAvatar 上传头像 覆盖旧头像
func UploadAvatar(ctx context.Context, uid string, data []byte, contentType string) (*StoredObject, error) {
	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return nil, fmt.Errorf("unsupported image format: %s", contentType)
	}
	return Upload(ctx, PictureBucket, "avatar/"+uid+suffix, data, contentType)
}

// DeleteByObjectId 按objectId(bucket/objectName)删除对象
func DeleteByObjectId(ctx context.Context, objectId string) error {
	if objectId == "" {
		return nil
	}
	bucketName, objectName, ok := splitObjectId(objectId)
	if !ok {
		return fmt.Errorf("malformed object id: %s", objectId)
	}
	if err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		logrus.Errorf("Failed to delete object %s: %v", objectId, err)
		return err
	}
	return nil
}

func splitObjectId(objectId string) (bucket, object string, ok bool) {
	for i := 0; i < len(objectId); i++ {
		if objectId[i] == '/' {
			if i == 0 || i == len(objectId)-1 {
				return "", "", false
			}
			return objectId[:i], objectId[i+1:], true
		}
	}
	return "", "", false
}
