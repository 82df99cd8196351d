package logger

import "errors"

var (
	// ErrInvalidOutputPath 启用文件输出但未提供路径
	ErrInvalidOutputPath = errors.New("logger: output path is required when file output is enabled")

	// ErrNoOutputEnabled 控制台与文件输出均未启用
	ErrNoOutputEnabled = errors.New("logger: at least one output (console or file) must be enabled")
)
