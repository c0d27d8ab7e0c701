package service

import (
	"context"

	"TagHub.com/cmd/user/infras/redis"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
	"github.com/sirupsen/logrus"
)

type SendCodeService struct {
	ctx context.Context
}

func NewSendCodeService(ctx context.Context) *SendCodeService {
	return &SendCodeService{ctx: ctx}
}

func (s *SendCodeService) SendCode(email string) error {
	if !utils.IsValidEmail(email) {
		return errno.ParamErr.WithMessage("invalid email address")
	}
	code, err := utils.SendEmail(email)
	if err != nil {
		logrus.Info(err)
		return err
	}
	return redis.RecordCode(s.ctx, email, code)
}
