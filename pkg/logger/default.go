package logger

import (
	"context"
	"os"
	"sync"
)

var (
	defaultLogger     Logger
	defaultLoggerOnce sync.Once
	defaultLoggerMu   sync.RWMutex
)

// InitDefault 初始化默认 logger
func InitDefault(cfg *Config, opts ...Option) error {
	logger, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	SetDefault(logger)
	return nil
}

// InitDefaultFromEnv 从环境变量初始化默认 logger
// 环境变量前缀: XOPENAPI_LOG_
func InitDefaultFromEnv() error {
	cfg := DefaultConfig()

	if level := os.Getenv("XOPENAPI_LOG_LEVEL"); level != "" {
		cfg.Level = Level(level)
	}
	if format := os.Getenv("XOPENAPI_LOG_FORMAT"); format != "" {
		cfg.Format = Format(format)
	}
	if path := os.Getenv("XOPENAPI_LOG_PATH"); path != "" {
		cfg.EnableFile = true
		cfg.OutputPath = path
	}
	if os.Getenv("XOPENAPI_LOG_CONSOLE") == "false" {
		cfg.EnableConsole = false
	}
	if os.Getenv("XOPENAPI_LOG_DEVELOPMENT") == "true" {
		cfg.Development = true
	}

	return InitDefault(cfg)
}

// SetDefault 设置默认 logger
func SetDefault(logger Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}

// Default 获取默认 logger
func Default() Logger {
	defaultLoggerOnce.Do(func() {
		// 懒加载：使用默认配置 (仅控制台输出)
		if defaultLogger == nil {
			logger, err := New(DefaultConfig())
			if err != nil {
				panic(err)
			}
			defaultLogger = logger
		}
	})

	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// --- 便捷函数 (使用默认 logger) ---

func Debug(msg string, keysAndValues ...interface{}) {
	Default().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...interface{}) {
	Default().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	Default().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...interface{}) {
	Default().Error(msg, keysAndValues...)
}

func Named(name string) Logger {
	return Default().Named(name)
}

func WithFields(keysAndValues ...interface{}) Logger {
	return Default().WithFields(keysAndValues...)
}

func Sync() error {
	return Default().Sync()
}

// --- Context 版本的便捷函数 ---

func DebugContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	Default().DebugContext(ctx, msg, keysAndValues...)
}

func InfoContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	Default().InfoContext(ctx, msg, keysAndValues...)
}

func WarnContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	Default().WarnContext(ctx, msg, keysAndValues...)
}

func ErrorContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	Default().ErrorContext(ctx, msg, keysAndValues...)
}
