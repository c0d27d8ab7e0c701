package model

import "time"

// Video 内容实体 creator_id/brand_id至少一个非零
type Video struct {
	VideoId         int64     `gorm:"column:video_id;primaryKey" json:"video_id"`
	CreatorId       int64     `gorm:"column:creator_id;index" json:"creator_id"`
	BrandId         int64     `gorm:"column:brand_id;index" json:"brand_id"`
	Title           string    `gorm:"column:title" json:"title"`
	Description     string    `gorm:"column:description" json:"description"`
	VideoUrl        string    `gorm:"column:video_url" json:"video_url"`
	VideoObject     string    `gorm:"column:video_object" json:"-"`
	ThumbnailUrl    string    `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	ThumbnailObject string    `gorm:"column:thumbnail_object" json:"-"`
	Category        string    `gorm:"column:category;index" json:"category"`
	Kind            string    `gorm:"column:kind;index" json:"kind"` // video | short
	Views           int64     `gorm:"column:views" json:"views"`
	CreatedAt       time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoLike 点赞成员关系 (video_id, user_id) 唯一键即集合成员语义
type VideoLike struct {
	Id        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VideoId   int64     `gorm:"column:video_id;index;uniqueIndex:idx_video_user" json:"video_id"`
	UserId    int64     `gorm:"column:user_id;uniqueIndex:idx_video_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}

// Comment 评论 从属于视频 无独立生命周期
type Comment struct {
	CommentId int64     `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	VideoId   int64     `gorm:"column:video_id;index" json:"video_id"`
	UserId    int64     `gorm:"column:user_id" json:"user_id"`
	Text      string    `gorm:"column:text" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// LeaderboardEntry 创作者榜单条目
type LeaderboardEntry struct {
	CreatorId     int64  `json:"creator_id"`
	Name          string `json:"name"`
	TotalLikes    int64  `json:"total_likes"`
	TotalComments int64  `json:"total_comments"`
	TotalViews    int64  `json:"total_views"`
	TotalPoints   int64  `json:"total_points"`
}
