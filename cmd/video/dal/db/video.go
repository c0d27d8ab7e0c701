package db

import (
	"context"
	"strings"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// VideoFilter 列表筛选条件 文本字段大小写不敏感包含 id/枚举精确
type VideoFilter struct {
	Category  string
	Title     string
	Kind      string
	CreatorId int64
	BrandId   int64
}

func applyFilter(db *gorm.DB, filter *VideoFilter) *gorm.DB {
	if filter == nil {
		return db
	}
	if filter.Kind != "" {
		db = db.Where("kind = ?", filter.Kind)
	}
	if filter.CreatorId != 0 {
		db = db.Where("creator_id = ?", filter.CreatorId)
	}
	if filter.BrandId != 0 {
		db = db.Where("brand_id = ?", filter.BrandId)
	}
	if filter.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Category != "" {
		db = db.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	return db
}

// QueryVideos 按条件查询 新发布在前
func QueryVideos(ctx context.Context, filter *VideoFilter) ([]*model.Video, error) {
	var videos []*model.Video
	db := applyFilter(DB.WithContext(ctx).Model(&model.Video{}), filter)
	if err := db.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryVideos failed,err: %v", err)
	}
	return videos, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err: %v", err)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetVideo failed,err: %v", err)
	}
	return &video, nil
}

// DeleteVideo 连同从属的点赞与评论一起删除
func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.VideoLike{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo likes failed,err: %v", err)
	}
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo comments failed,err: %v", err)
	}
	result := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteVideo failed,err: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddVideoVisit 原子自增播放数 并发观看不丢更新
func AddVideoVisit(ctx context.Context, videoId int64) (int64, error) {
	result := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "AddVideoVisit failed,err: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var views int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Select("views").
		Where("video_id = ?", videoId).Scan(&views).Error; err != nil {
		return 0, errors.Wrapf(err, "AddVideoVisit read failed,err: %v", err)
	}
	return views, nil
}

// GetUserVideos 用户主页列表 creator或brand身份均可
func GetUserVideos(ctx context.Context, userId int64, kind string) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("kind = ? AND (creator_id = ? OR brand_id = ?)", kind, userId, userId).
		Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserVideos failed,err: %v", err)
	}
	return videos, nil
}

// GetRelatedVideos 同类目视频 按热度取前limit条 排除自身
func GetRelatedVideos(ctx context.Context, videoId int64, category string, limit int) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id <> ? AND category = ?", videoId, category).
		Order("views DESC").Limit(limit).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "GetRelatedVideos failed,err: %v", err)
	}
	return videos, nil
}

func CountVideosByKind(ctx context.Context, kind string) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("kind = ?", kind).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountVideosByKind failed,err: %v", err)
	}
	return count, nil
}

// CreatorEngagement 单个创作者名下内容的互动总量
type CreatorEngagement struct {
	CreatorId     int64
	TotalViews    int64
	TotalLikes    int64
	TotalComments int64
}

// GetCreatorEngagement 三次分组聚合 与逐创作者求和等价
func GetCreatorEngagement(ctx context.Context) (map[int64]*CreatorEngagement, error) {
	out := make(map[int64]*CreatorEngagement)
	ensure := func(id int64) *CreatorEngagement {
		if e, ok := out[id]; ok {
			return e
		}
		e := &CreatorEngagement{CreatorId: id}
		out[id] = e
		return e
	}

	var viewRows []struct {
		CreatorId int64
		Total     int64
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("creator_id, COALESCE(SUM(views),0) AS total").
		Where("creator_id <> 0").Group("creator_id").Scan(&viewRows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCreatorEngagement views failed,err: %v", err)
	}
	for _, r := range viewRows {
		ensure(r.CreatorId).TotalViews = r.Total
	}

	var likeRows []struct {
		CreatorId int64
		Total     int64
	}
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Select("videos.creator_id AS creator_id, COUNT(*) AS total").
		Joins("JOIN videos ON videos.video_id = video_likes.video_id").
		Where("videos.creator_id <> 0").Group("videos.creator_id").Scan(&likeRows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCreatorEngagement likes failed,err: %v", err)
	}
	for _, r := range likeRows {
		ensure(r.CreatorId).TotalLikes = r.Total
	}

	var commentRows []struct {
		CreatorId int64
		Total     int64
	}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("videos.creator_id AS creator_id, COUNT(*) AS total").
		Joins("JOIN videos ON videos.video_id = comments.video_id").
		Where("videos.creator_id <> 0").Group("videos.creator_id").Scan(&commentRows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCreatorEngagement comments failed,err: %v", err)
	}
	for _, r := range commentRows {
		ensure(r.CreatorId).TotalComments = r.Total
	}
	return out, nil
}
