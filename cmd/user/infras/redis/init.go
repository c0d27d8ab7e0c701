package redis

import (
	"context"

	"TagHub.com/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var redisDB *redis.Client

func Load() {
	redisDB = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})
	if _, err := redisDB.Ping(context.Background()).Result(); err != nil {
		logrus.Info("redisDB ", err)
	}
}

// SetClient 测试注入
func SetClient(client *redis.Client) {
	redisDB = client
}
