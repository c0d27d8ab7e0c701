package model

import "time"

// User 账号实体 brand与creator共用一张表 按role区分
type User struct {
	UserId      int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Email       string    `gorm:"column:email;uniqueIndex" json:"email"`
	Password    string    `gorm:"column:password" json:"-"` // 密码字段，不在JSON中序列化
	Role        string    `gorm:"column:role;index" json:"role"`
	Image       string    `gorm:"column:image" json:"image"`
	CompanyName string    `gorm:"column:company_name" json:"company_name"`
	Website     string    `gorm:"column:website" json:"website"`
	Bio         string    `gorm:"column:bio" json:"bio"`
	Topic       string    `gorm:"column:topic" json:"topic"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserInfo 对外暴露的精简档案 不含密码
type UserInfo struct {
	UserId      int64  `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Image       string `json:"image"`
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Topic       string `json:"topic,omitempty"`
}

func (u *User) Info() *UserInfo {
	return &UserInfo{
		UserId:      u.UserId,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Image:       u.Image,
		CompanyName: u.CompanyName,
		Website:     u.Website,
		Bio:         u.Bio,
		Topic:       u.Topic,
	}
}
