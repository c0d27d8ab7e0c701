package model

import "time"

// Requirement 品牌发布的内容需求
type Requirement struct {
	RequirementId int64     `gorm:"column:requirement_id;primaryKey" json:"requirement_id"`
	BrandId       int64     `gorm:"column:brand_id;index" json:"brand_id"`
	Title         string    `gorm:"column:title" json:"title"`
	Description   string    `gorm:"column:description" json:"description"`
	Category      string    `gorm:"column:category;index" json:"category"`
	Budget        int64     `gorm:"column:budget" json:"budget"`
	TotalNeed     int64     `gorm:"column:total_need" json:"total_need"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Requirement) TableName() string {
	return "requirements"
}
