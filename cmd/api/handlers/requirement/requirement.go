package handlers

import (
	"context"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/requirement/service"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// PostRequirement 品牌发布内容需求
func PostRequirement(ctx context.Context, c *app.RequestContext) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Budget      int64  `json:"budget"`
		TotalNeed   int64  `json:"total_need"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	requirement, err := service.NewRequirementService(ctx).Post(
		jwt.CallerId(ctx, c), jwt.CallerRole(ctx, c),
		&model.Requirement{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Budget:      req.Budget,
			TotalNeed:   req.TotalNeed,
		})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, requirement)
}

// ListRequirements 需求列表 可按类目或发布品牌过滤
func ListRequirements(ctx context.Context, c *app.RequestContext) {
	var req struct {
		Category string `query:"category"`
		BrandId  int64  `query:"brand_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	requirements, err := service.NewRequirementService(ctx).List(req.Category, req.BrandId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, requirements)
}

// DeleteRequirement 删除需求 发布者或管理员
func DeleteRequirement(ctx context.Context, c *app.RequestContext) {
	var req struct {
		RequirementId int64 `json:"requirement_id" query:"requirement_id"`
	}
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.RequestErr, nil)
		return
	}
	err := service.NewRequirementService(ctx).Delete(
		req.RequirementId, jwt.CallerId(ctx, c), jwt.CallerRole(ctx, c))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
