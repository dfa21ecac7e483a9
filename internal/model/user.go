package model

import (
	"time"
)

// 角色枚举
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 用户模型
type User struct {
	ID           int       `json:"id" db:"id" gorm:"primaryKey"`
	Email        string    `json:"email" db:"email" gorm:"size:150;uniqueIndex;not null"`
	Name         string    `json:"name" db:"name" gorm:"size:150;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"size:150;not null"`
	Role         string    `json:"role" db:"role" gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	ID    int
	Email string
	Name  string
	Role  string
}
