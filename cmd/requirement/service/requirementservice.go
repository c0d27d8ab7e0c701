package service

import (
	"context"
	"time"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/requirement/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
)

type RequirementService struct {
	ctx context.Context
}

func NewRequirementService(ctx context.Context) *RequirementService {
	return &RequirementService{ctx: ctx}
}

// Post 发布内容需求 仅品牌账号
func (s *RequirementService) Post(brandId int64, role string, requirement *model.Requirement) (*model.Requirement, error) {
	if role != constants.RoleBrand {
		return nil, errno.AuthorizationFailedErr
	}
	if requirement.Title == "" || requirement.Category == "" {
		return nil, errno.RequestErr
	}
	requirement.RequirementId = utils.GenId()
	requirement.BrandId = brandId
	requirement.CreatedAt = time.Now()
	if err := db.CreateRequirement(s.ctx, requirement); err != nil {
		return nil, errno.MysqlErr
	}
	return requirement, nil
}

// RequirementInfo 需求及发布品牌档案
type RequirementInfo struct {
	*model.Requirement
	BrandName    string `json:"brand_name"`
	CompanyName  string `json:"company_name"`
	BrandWebsite string `json:"brand_website"`
}

// List 需求列表 批量补齐发布品牌信息
func (s *RequirementService) List(category string, brandId int64) ([]*RequirementInfo, error) {
	requirements, err := db.QueryRequirements(s.ctx, category, brandId)
	if err != nil {
		return nil, errno.MysqlErr
	}

	brandIds := make([]int64, 0, len(requirements))
	seen := make(map[int64]struct{}, len(requirements))
	for _, r := range requirements {
		if _, ok := seen[r.BrandId]; !ok {
			seen[r.BrandId] = struct{}{}
			brandIds = append(brandIds, r.BrandId)
		}
	}
	brands, err := userdb.GetUsersByIds(s.ctx, brandIds)
	if err != nil {
		return nil, errno.MysqlErr
	}
	byId := make(map[int64]*model.User, len(brands))
	for _, u := range brands {
		byId[u.UserId] = u
	}

	infos := make([]*RequirementInfo, 0, len(requirements))
	for _, r := range requirements {
		info := &RequirementInfo{Requirement: r}
		if u, ok := byId[r.BrandId]; ok {
			info.BrandName = u.Name
			info.CompanyName = u.CompanyName
			info.BrandWebsite = u.Website
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Delete 删除需求 发布者或管理员
func (s *RequirementService) Delete(requirementId, callerId int64, callerRole string) error {
	requirement, err := db.GetRequirement(s.ctx, requirementId)
	if err != nil {
		return errno.MysqlErr
	}
	if requirement == nil {
		return errno.NotFoundErr
	}
	if requirement.BrandId != callerId && callerRole != constants.RoleAdmin {
		return errno.AuthorizationFailedErr
	}
	if err := db.DeleteRequirement(s.ctx, requirementId); err != nil {
		return errno.MysqlErr
	}
	return nil
}
