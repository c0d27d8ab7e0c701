package service

import (
	"context"
	"testing"

	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	userredis "TagHub.com/cmd/user/infras/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.User{}))
	userdb.DB = gdb
}

func validCreatorReq() *CreateUserRequest {
	return &CreateUserRequest{
		Name: "alice", Email: "alice@test.com", Password: "secret123",
		Role: "creator", Topic: "tech",
	}
}

func TestCreateUserAndLogin(t *testing.T) {
	setupUserDB(t)
	ctx := context.Background()

	user, err := NewCreateUserService(ctx).CreateUser(validCreatorReq())
	require.NoError(t, err)
	assert.NotZero(t, user.UserId)
	// 密码不落明文
	assert.NotEqual(t, "secret123", user.Password)

	logged, err := NewLoginUserService(ctx).Login("alice@test.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.UserId, logged.UserId)

	_, err = NewLoginUserService(ctx).Login("alice@test.com", "wrong")
	assert.Error(t, err)
}

func TestCreateUserValidation(t *testing.T) {
	setupUserDB(t)
	ctx := context.Background()
	svc := NewCreateUserService(ctx)

	req := validCreatorReq()
	req.Email = "not-an-email"
	_, err := svc.CreateUser(req)
	assert.Error(t, err)

	req = validCreatorReq()
	req.Role = "viewer"
	_, err = svc.CreateUser(req)
	assert.Error(t, err)

	// brand必须带公司信息
	req = validCreatorReq()
	req.Role = "brand"
	_, err = svc.CreateUser(req)
	assert.Error(t, err)

	req = validCreatorReq()
	req.Role = "brand"
	req.CompanyName = "Acme"
	req.Website = "https://acme.test"
	_, err = svc.CreateUser(req)
	assert.NoError(t, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setupUserDB(t)
	ctx := context.Background()
	svc := NewCreateUserService(ctx)

	_, err := svc.CreateUser(validCreatorReq())
	require.NoError(t, err)
	_, err = svc.CreateUser(validCreatorReq())
	assert.Error(t, err)
}

func TestDeleteUserAuthorization(t *testing.T) {
	setupUserDB(t)
	ctx := context.Background()

	alice, err := NewCreateUserService(ctx).CreateUser(validCreatorReq())
	require.NoError(t, err)
	req := validCreatorReq()
	req.Email = "bob@test.com"
	bob, err := NewCreateUserService(ctx).CreateUser(req)
	require.NoError(t, err)

	// 非本人且非管理员
	err = NewDeleteUserService(ctx).DeleteUser(bob.UserId, alice.UserId)
	assert.Error(t, err)
	// 本人可注销
	require.NoError(t, NewDeleteUserService(ctx).DeleteUser(alice.UserId, alice.UserId))
	_, err = NewGetUserInfoService(ctx).GetUserInfo(alice.UserId)
	assert.Error(t, err)
}

func TestVerifyCodeConsumedOnce(t *testing.T) {
	setupUserDB(t)
	mr := miniredis.RunT(t)
	userredis.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, userredis.RecordCode(ctx, "alice@test.com", "123456"))

	err := NewVerifyCodeService(ctx).VerifyCode("alice@test.com", "654321")
	assert.Error(t, err)
	require.NoError(t, NewVerifyCodeService(ctx).VerifyCode("alice@test.com", "123456"))
	// 验证通过即消费 第二次失败
	err = NewVerifyCodeService(ctx).VerifyCode("alice@test.com", "123456")
	assert.Error(t, err)
}
