package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validate 全局校验器实例，线程安全，可并发使用
var Validate = validator.New()
