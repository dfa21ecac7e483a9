package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword 生成带盐的 bcrypt 哈希，明文不落库不记日志
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 校验密码
// 哈希格式非法或不匹配都返回 false，不抛错
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
