package logger

// Option 配置选项
type Option func(*BaseLogger)

// WithName 设置 logger 名称
func WithName(name string) Option {
	return func(l *BaseLogger) {
		l.name = name
	}
}

// WithLevel 设置日志等级
func WithLevel(level Level) Option {
	return func(l *BaseLogger) {
		l.config.Level = level
	}
}

// WithDevelopment 启用开发模式
func WithDevelopment(dev bool) Option {
	return func(l *BaseLogger) {
		l.config.Development = dev
	}
}

// WithContextExtractor 设置 context 字段提取器
func WithContextExtractor(extractor ContextFieldExtractor) Option {
	return func(l *BaseLogger) {
		if extractor != nil {
			l.contextExtractor = extractor
		}
	}
}
