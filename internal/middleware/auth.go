package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/user/cinema/internal/model"
)

// 鉴权策略层错误
var (
	// ErrUnauthorized 未登录
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden 已登录但不是管理员
	ErrForbidden = errors.New("admin privilege required")
)

// Claims JWT 声明
type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CheckAuthenticated 校验当前身份已登录
func CheckAuthenticated(su *model.SessionUser) error {
	if su == nil {
		return ErrUnauthorized
	}
	return nil
}

// CheckAdmin 校验当前身份为管理员
func CheckAdmin(su *model.SessionUser) error {
	if err := CheckAuthenticated(su); err != nil {
		return err
	}
	if su.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// RequireAuth 必须登录中间件
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, secret)
		if err != nil {
			// 页面请求重定向到登录页
			if strings.Contains(c.GetHeader("Accept"), "text/html") {
				c.Redirect(http.StatusFound, "/auth/login?redirect="+c.Request.URL.Path)
				c.Abort()
				return
			}
			// API 请求返回 401
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("userinfo", &model.SessionUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  claims.Role,
		})

		c.Next()
	}
}

// RequireAdmin 管理员权限中间件
// 授权失败直接响应 403，不做重定向
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := CheckAdmin(CurrentUser(c)); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 从上下文获取当前登录身份，匿名返回 nil
func CurrentUser(c *gin.Context) *model.SessionUser {
	if v, exists := c.Get("userinfo"); exists {
		if su, ok := v.(*model.SessionUser); ok {
			return su
		}
	}
	return nil
}

// extractClaims 从 Cookie 或 Header 中提取 JWT Claims
func extractClaims(c *gin.Context, secret string) (*Claims, error) {
	var tokenString string

	// 优先从 Cookie 获取
	if cookie, err := c.Cookie("token"); err == nil {
		tokenString = cookie
	} else {
		// 从 Authorization Header 获取
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	// 解析 Token
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GenerateToken 为登录成功的账号签发会话 Token
func GenerateToken(user *model.User, secret string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
