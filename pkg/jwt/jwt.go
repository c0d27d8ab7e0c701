package jwt

import (
	"context"
	"net/http"
	"time"

	"TagHub.com/cmd/model"
	userservice "TagHub.com/cmd/user/service"
	"TagHub.com/config"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
	"github.com/sirupsen/logrus"
)

var AccessTokenJwtMiddleware *jwt.HertzJWTMiddleware

const (
	identityKey = "user_id"
	roleKey     = "role"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AccessTokenJwtInit 初始化登录与鉴权中间件
func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "taghub",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       24 * time.Hour,
		MaxRefresh:    24 * time.Hour,
		IdentityKey:   identityKey,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					identityKey: user.UserId,
					roleKey:     user.Role,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[identityKey]
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var req loginRequest
			if err := c.BindAndValidate(&req); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}
			user, err := userservice.NewLoginUserService(ctx).Login(req.Email, req.Password)
			if err != nil {
				logrus.Infof("login failed for %s: %v", req.Email, err)
				return nil, jwt.ErrFailedAuthentication
			}
			return user, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(http.StatusOK, map[string]interface{}{
				"code":   errno.SuccessCode,
				"msg":    "login success",
				"token":  token,
				"expire": expire.Format(time.RFC3339),
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"code": errno.AuthorizationFailedCode,
				"msg":  message,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

// CallerId 取调用者id 未登录请求返回0
func CallerId(ctx context.Context, c *app.RequestContext) int64 {
	claims := jwt.ExtractClaims(ctx, c)
	v, ok := claims[identityKey]
	if !ok {
		return 0
	}
	return utils.Transfer(v)
}

// CallerRole 从已通过鉴权的请求中取调用者角色
func CallerRole(ctx context.Context, c *app.RequestContext) string {
	claims := jwt.ExtractClaims(ctx, c)
	if role, ok := claims[roleKey].(string); ok {
		return role
	}
	return ""
}
