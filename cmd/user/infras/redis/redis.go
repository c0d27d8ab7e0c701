package redis

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// RecordCode 记录一个临时的验证码
func RecordCode(ctx context.Context, email, code string) error {
	expiration := 5 * time.Minute
	if err := redisDB.Set(ctx, email, code, expiration).Err(); err != nil {
		logrus.Info("Redis set key failed : ", err)
		return err
	}
	return nil
}

// GetCode 读取一个临时的验证码
func GetCode(ctx context.Context, email string) (string, error) {
	code, err := redisDB.Get(ctx, email).Result()
	if err != nil {
		logrus.Info("Redis get key failed : ", err)
		return "", err
	}
	return code, nil
}

func DeleteKey(ctx context.Context, key string) error {
	if err := redisDB.Del(ctx, key).Err(); err != nil {
		logrus.Info("Redis delete key failed : ", err)
		return err
	}
	return nil
}

// DelCode 删除验证码
func DelCode(ctx context.Context, email string) error {
	return DeleteKey(ctx, email)
}
