package model

import "time"

// Follow 关注边 follower -> followee 单向
// (follower_id, followee_id) 唯一键保证集合语义下的原子去重
type Follow struct {
	Id         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerId int64     `gorm:"column:follower_id;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeId int64     `gorm:"column:followee_id;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
