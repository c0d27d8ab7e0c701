package db

import (
	"context"
	"strings"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateRequirement(ctx context.Context, requirement *model.Requirement) error {
	if err := DB.WithContext(ctx).Create(requirement).Error; err != nil {
		return errors.Wrapf(err, "CreateRequirement failed,err: %v", err)
	}
	return nil
}

func GetRequirement(ctx context.Context, requirementId int64) (*model.Requirement, error) {
	var requirement model.Requirement
	if err := DB.WithContext(ctx).Model(&model.Requirement{}).
		Where("requirement_id = ?", requirementId).First(&requirement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetRequirement failed,err: %v", err)
	}
	return &requirement, nil
}

// QueryRequirements 需求列表 类目模糊匹配 brandId精确 新发布在前
func QueryRequirements(ctx context.Context, category string, brandId int64) ([]*model.Requirement, error) {
	var requirements []*model.Requirement
	query := DB.WithContext(ctx).Model(&model.Requirement{})
	if category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(category)+"%")
	}
	if brandId != 0 {
		query = query.Where("brand_id = ?", brandId)
	}
	if err := query.Order("created_at DESC").Find(&requirements).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryRequirements failed,err: %v", err)
	}
	return requirements, nil
}

func DeleteRequirement(ctx context.Context, requirementId int64) error {
	result := DB.WithContext(ctx).Where("requirement_id = ?", requirementId).Delete(&model.Requirement{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteRequirement failed,err: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
