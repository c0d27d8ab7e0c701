package db

import (
	"context"
	"strings"

	"TagHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

// CheckEmailExists 注册前的重复校验
func CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckEmailExists failed,err: %v", err)
	}
	return count > 0, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUserByEmail failed,err: %v", err)
	}
	return &user, nil
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetUser failed,err: %v", err)
	}
	return &user, nil
}

// GetUsersByIds 批量查询档案 会话摘要/榜单用
func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	var users []*model.User
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed,err: %v", err)
	}
	return users, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed,err: %v", err)
	}
	return count > 0, nil
}

func UpdateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", user.UserId).Updates(map[string]interface{}{
		"name":         user.Name,
		"company_name": user.CompanyName,
		"website":      user.Website,
		"bio":          user.Bio,
		"topic":        user.Topic,
		"updated_at":   user.UpdatedAt,
	}).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed,err: %v", err)
	}
	return nil
}

func UpdateUserImage(ctx context.Context, userId int64, imageUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("image", imageUrl).Error; err != nil {
		return errors.Wrapf(err, "UpdateUserImage failed,err: %v", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, userId int64) error {
	result := DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.User{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "DeleteUser failed, userId: %d", userId)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// QueryUsers 管理端用户列表 name模糊 其余精确
func QueryUsers(ctx context.Context, role, name, topic, email string) ([]*model.User, error) {
	db := DB.WithContext(ctx).Model(&model.User{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if name != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if topic != "" {
		db = db.Where("topic = ?", topic)
	}
	if email != "" {
		db = db.Where("email = ?", email)
	}
	var users []*model.User
	if err := db.Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "QueryUsers failed,err: %v", err)
	}
	return users, nil
}

// GetCreatorIds 全量creator的id 榜单聚合的输入
func GetCreatorIds(ctx context.Context) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("role = ?", "creator").
		Order("user_id ASC").Select("user_id").Scan(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetCreatorIds failed,err: %v", err)
	}
	return list, nil
}

type RegistrationPoint struct {
	Day   string `gorm:"column:day" json:"day"`
	Count int64  `gorm:"column:count" json:"count"`
}

// CountRegistrationsByDay 按注册日聚合 管理端增长曲线用
func CountRegistrationsByDay(ctx context.Context) ([]*RegistrationPoint, error) {
	points := make([]*RegistrationPoint, 0)
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count").
		Group("DATE(created_at)").Order("day ASC").Scan(&points).Error; err != nil {
		return nil, errors.Wrapf(err, "CountRegistrationsByDay failed,err: %v", err)
	}
	return points, nil
}

func CountUsersByRole(ctx context.Context, role string) (count int64, err error) {
	db := DB.WithContext(ctx).Model(&model.User{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if err := db.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "CountUsersByRole failed,err: %v", err)
	}
	return count, nil
}
