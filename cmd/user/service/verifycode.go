package service

import (
	"context"

	"TagHub.com/cmd/user/infras/redis"
	"TagHub.com/pkg/errno"
)

type VerifyCodeService struct {
	ctx context.Context
}

func NewVerifyCodeService(ctx context.Context) *VerifyCodeService {
	return &VerifyCodeService{ctx: ctx}
}

func (s *VerifyCodeService) VerifyCode(email, code string) error {
	rcv, err := redis.GetCode(s.ctx, email)
	if err != nil {
		return errno.VerifyCodeErr.WithMessage("code expired or never sent")
	}
	if rcv != code {
		return errno.VerifyCodeErr
	}
	// 验证码一次性使用
	redis.DelCode(s.ctx, email)
	return nil
}
