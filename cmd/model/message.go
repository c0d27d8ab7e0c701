package model

import "time"

// Message 私信 写入后不修改 正常流程不删除
type Message struct {
	MessageId  int64     `gorm:"column:message_id;primaryKey" json:"message_id"`
	FromUserId int64     `gorm:"column:from_user_id;index" json:"from_user_id"`
	ToUserId   int64     `gorm:"column:to_user_id;index" json:"to_user_id"`
	Content    string    `gorm:"column:content" json:"content"`
	Kind       string    `gorm:"column:kind" json:"kind"` // text | image | audio
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// ChatSummary 会话摘要 每个对端一条
type ChatSummary struct {
	CounterpartId   int64     `json:"counterpart_id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	LastMessageText string    `json:"last_message_text"`
	LastMessageTime time.Time `json:"last_message_time"`
}
