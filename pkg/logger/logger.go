// pkg/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 确保 BaseLogger 实现了 Logger 接口
var _ Logger = (*BaseLogger)(nil)

// BaseLogger 基于 zap 的日志记录器实现
type BaseLogger struct {
	zl               *zap.Logger
	config           *Config
	name             string
	contextExtractor ContextFieldExtractor
}

// New 创建新的 BaseLogger
func New(cfg *Config, opts ...Option) (*BaseLogger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := &BaseLogger{
		config:           cfg,
		contextExtractor: DefaultContextExtractor,
	}

	// 应用选项
	for _, opt := range opts {
		opt(logger)
	}

	// 构建 zap logger
	zapLogger, err := logger.build()
	if err != nil {
		return nil, err
	}

	logger.zl = zapLogger

	return logger, nil
}

// build 构建 zap logger
func (l *BaseLogger) build() (*zap.Logger, error) {
	encoderConfig := l.buildEncoderConfig()

	var encoder zapcore.Encoder
	switch l.config.Format {
	case ConsoleFormat:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	// 创建 writer
	writers := make([]zapcore.WriteSyncer, 0, 2)

	// 控制台输出
	if l.config.EnableConsole {
		writers = append(writers, zapcore.AddSync(os.Stdout))
	}

	// 文件输出 (仅在 EnableFile=true 时创建 rotation writer)
	if l.config.EnableFile {
		fileWriter, err := NewRotationWriter(&l.config.Rotation, l.config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create rotation writer: %w", err)
		}
		writers = append(writers, zapcore.AddSync(fileWriter))
	}

	writeSyncer := zapcore.NewMultiWriteSyncer(writers...)

	core := zapcore.NewCore(encoder, writeSyncer, l.parseLevel(l.config.Level))

	options := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}

	if l.config.EnableStacktrace {
		options = append(options, zap.AddStacktrace(l.parseLevel(l.config.StacktraceLevel)))
	}

	if l.config.Development {
		options = append(options, zap.Development())
	}

	zapLogger := zap.New(core, options...)

	if l.name != "" {
		zapLogger = zapLogger.Named(l.name)
	}

	return zapLogger, nil
}

// buildEncoderConfig 构建 encoder 配置
func (l *BaseLogger) buildEncoderConfig() zapcore.EncoderConfig {
	config := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if l.config.TimeFormat != "" {
		config.EncodeTime = zapcore.TimeEncoderOfLayout(l.config.TimeFormat)
	} else {
		config.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	// 开发模式：彩色输出
	if l.config.Development {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config
}

// parseLevel 解析日志等级
func (l *BaseLogger) parseLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case PanicLevel:
		return zapcore.PanicLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// toZapFields 将 keysAndValues 转换为 zap.Field
func (l *BaseLogger) toZapFields(keysAndValues ...interface{}) []zap.Field {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make([]zap.Field, 0, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			// 奇数个参数，最后一个作为无键值记录
			fields = append(fields, zap.Any("dangling", keysAndValues[i]))
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

// Debug 记录 debug 级别日志
func (l *BaseLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.zl.Debug(msg, l.toZapFields(keysAndValues...)...)
}

// Info 记录 info 级别日志
func (l *BaseLogger) Info(msg string, keysAndValues ...interface{}) {
	l.zl.Info(msg, l.toZapFields(keysAndValues...)...)
}

// Warn 记录 warn 级别日志
func (l *BaseLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.zl.Warn(msg, l.toZapFields(keysAndValues...)...)
}

// Error 记录 error 级别日志
func (l *BaseLogger) Error(msg string, keysAndValues ...interface{}) {
	l.zl.Error(msg, l.toZapFields(keysAndValues...)...)
}

// DebugContext 记录 debug 级别日志，并从 context 中提取字段
func (l *BaseLogger) DebugContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fields := append(l.contextExtractor(ctx), l.toZapFields(keysAndValues...)...)
	l.zl.Debug(msg, fields...)
}

// InfoContext 记录 info 级别日志，并从 context 中提取字段
func (l *BaseLogger) InfoContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fields := append(l.contextExtractor(ctx), l.toZapFields(keysAndValues...)...)
	l.zl.Info(msg, fields...)
}

// WarnContext 记录 warn 级别日志，并从 context 中提取字段
func (l *BaseLogger) WarnContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fields := append(l.contextExtractor(ctx), l.toZapFields(keysAndValues...)...)
	l.zl.Warn(msg, fields...)
}

// ErrorContext 记录 error 级别日志，并从 context 中提取字段
func (l *BaseLogger) ErrorContext(ctx context.Context, msg string, keysAndValues ...interface{}) {
	fields := append(l.contextExtractor(ctx), l.toZapFields(keysAndValues...)...)
	l.zl.Error(msg, fields...)
}

// Named 创建具名 logger
func (l *BaseLogger) Named(name string) Logger {
	return &BaseLogger{
		zl:               l.zl.Named(name),
		config:           l.config,
		name:             name,
		contextExtractor: l.contextExtractor,
	}
}

// WithFields 创建带固定字段的 logger
func (l *BaseLogger) WithFields(keysAndValues ...interface{}) Logger {
	return &BaseLogger{
		zl:               l.zl.With(l.toZapFields(keysAndValues...)...),
		config:           l.config,
		name:             l.name,
		contextExtractor: l.contextExtractor,
	}
}

// Sync 刷新缓冲的日志
func (l *BaseLogger) Sync() error {
	return l.zl.Sync()
}
