package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	NotFoundErrCode         = 10003
	AuthorizationFailedCode = 10004
	MysqlErrCode            = 10005
	RedisErrCode            = 10006
	OssErrCode              = 10007
	VerifyCodeErrCode       = 10008
	TokenInvailedErrCode    = 10009
	UserAlreadyExistCode    = 10010
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	// RequestErr 调用方参数非法
	RequestErr = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	ParamErr   = RequestErr
	// NotFoundErr 引用的账号/视频/消息不存在
	NotFoundErr = NewErrNo(NotFoundErrCode, "Record does not exist")
	// AuthorizationFailedErr 非所有者或管理员执行破坏性操作
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	MysqlErr               = NewErrNo(MysqlErrCode, "Mysql operation failed")
	RedisErr               = NewErrNo(RedisErrCode, "Redis operation failed")
	// OssErr 对象存储上传/删除失败
	OssErr           = NewErrNo(OssErrCode, "Object storage operation failed")
	VerifyCodeErr    = NewErrNo(VerifyCodeErrCode, "Verify code is wrong")
	TokenInvailedErr = NewErrNo(TokenInvailedErrCode, "Token is invalid")
	UserAlreadyExist = NewErrNo(UserAlreadyExistCode, "User already exists")
)

// ConvertErr convert error to ErrNo
// in Default user ServiceErr
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
