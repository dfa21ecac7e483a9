package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/user/cinema/internal/middleware"
	"github.com/user/cinema/internal/model"
	"github.com/user/cinema/internal/repository"
	"github.com/user/cinema/internal/utils"
)

// ErrInvalidCredentials 邮箱或密码错误
// 不区分邮箱不存在和密码不对，避免账号枚举
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore 认证流程依赖的账号仓库能力
type UserStore interface {
	Create(name, email, password, role string) (*model.User, error)
	CreateBootstrapAdmin(name, email, password string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
}

// AuthService 注册 / 登录 / 管理员创建流程
type AuthService struct {
	users  UserStore
	secret string
	expiry time.Duration
}

// NewAuthService 创建认证服务
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, expiry: expiry}
}

// RegisterInput 注册/建号表单
type RegisterInput struct {
	Name     string `validate:"required,max=150"`
	Email    string `validate:"required,email,max=150"`
	Password string `validate:"required,min=6,max=72"`
}

// Register 注册普通用户
func (s *AuthService) Register(in RegisterInput) (*model.User, error) {
	if err := utils.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrValidation, err)
	}
	return s.users.Create(in.Name, in.Email, in.Password, model.RoleUser)
}

// Login 登录，成功返回会话身份和签名 Token
func (s *AuthService) Login(email, password string) (*model.SessionUser, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, s.secret, s.expiry)
	if err != nil {
		return nil, "", err
	}

	su := &model.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
	return su, token, nil
}

// CreateBootstrapAdmin 系统首个管理员的一次性创建入口
// 已有管理员时透传 repository.ErrAlreadyInitialized
func (s *AuthService) CreateBootstrapAdmin(in RegisterInput) (*model.User, error) {
	if err := utils.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrValidation, err)
	}
	return s.users.CreateBootstrapAdmin(in.Name, in.Email, in.Password)
}

// CreateAdmin 已登录管理员追加新管理员，始终可用，由鉴权中间件把关
func (s *AuthService) CreateAdmin(in RegisterInput) (*model.User, error) {
	if err := utils.Validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrValidation, err)
	}
	return s.users.Create(in.Name, in.Email, in.Password, model.RoleAdmin)
}

// TokenExpiry 会话有效期，供 handler 设置 Cookie
func (s *AuthService) TokenExpiry() time.Duration {
	return s.expiry
}
