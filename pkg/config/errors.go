package config

import "errors"

var (
	// ErrValidationFailed 配置结构体未通过声明式校验
	ErrValidationFailed = errors.New("config: validation failed")

	// ErrNilConfig 待校验的配置为 nil
	ErrNilConfig = errors.New("config: cannot validate nil config")
)
