package main

import (
	"context"
	"fmt"

	interactiondal "TagHub.com/cmd/interaction/dal"
	messagedal "TagHub.com/cmd/message/dal"
	relationdal "TagHub.com/cmd/relation/dal"
	userdal "TagHub.com/cmd/user/dal"
	userredis "TagHub.com/cmd/user/infras/redis"
	videodal "TagHub.com/cmd/video/dal"
	videoservice "TagHub.com/cmd/video/service"
	"TagHub.com/config"
	"TagHub.com/pkg/cache"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/jwt"
	"TagHub.com/pkg/mq"
	"TagHub.com/pkg/oss"
	"TagHub.com/pkg/utils"

	requirementdal "TagHub.com/cmd/requirement/dal"

	"TagHub.com/cmd/api/router"
	webs "TagHub.com/cmd/api/router/websocket"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	userdal.Init()
	videodal.Init()
	relationdal.Init()
	interactiondal.Init()
	messagedal.Init()
	requirementdal.Init()
	userredis.Load()

	if err := oss.InitMinio(); err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	leaderboardCache := cache.NewLeaderboardCacheManager(client)
	videoservice.InitLeaderboardCache(leaderboardCache)

	// 互动事件到达即作废榜单快照 下次读取触发重算
	if err := mq.InitProducer(utils.GetRabbitMqUrl()); err != nil {
		logrus.Warnf("rabbitmq producer init failed, engagement events disabled: %v", err)
	} else {
		consumer, err := mq.NewConsumer(utils.GetRabbitMqUrl(),
			func(ctx context.Context, event *mq.EngagementEvent) error {
				return leaderboardCache.Invalidate(ctx)
			})
		if err != nil {
			logrus.Warnf("rabbitmq consumer init failed: %v", err)
		} else {
			go func() {
				if err := consumer.Start(context.Background()); err != nil {
					logrus.Errorf("engagement event consumer stopped: %v", err)
				}
			}()
		}
	}
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	jwt.AccessTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)

	ws := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.WsAddr),
	)
	ws.NoHijackConnPool = true
	webs.WebsocketRegister(ws)

	go ws.Spin()
	r.Spin()
}
