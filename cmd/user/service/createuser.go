package service

import (
	"context"
	"time"

	"TagHub.com/cmd/model"
	"TagHub.com/cmd/user/dal/db"
	"TagHub.com/pkg/constants"
	"TagHub.com/pkg/errno"
	"TagHub.com/pkg/utils"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	Bio         string `json:"bio"`
	Topic       string `json:"topic"`
}

func (v *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("name, email and password are required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errno.ParamErr.WithMessage("invalid email address")
	}
	if req.Role != constants.RoleBrand && req.Role != constants.RoleCreator {
		return nil, errno.ParamErr.WithMessage("role must be brand or creator")
	}
	// brand账号必须填公司信息
	if req.Role == constants.RoleBrand && (req.CompanyName == "" || req.Website == "") {
		return nil, errno.ParamErr.WithMessage("brand requires company_name and website")
	}

	exists, err := db.CheckEmailExists(v.ctx, req.Email)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if exists {
		return nil, errno.UserAlreadyExist
	}

	passWord, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	user := &model.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    passWord,
		Role:        req.Role,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Bio:         req.Bio,
		Topic:       req.Topic,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.CreateUser(v.ctx, user); err != nil {
		return nil, errno.MysqlErr
	}
	return user, nil
}
