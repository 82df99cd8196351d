// pkg/logger/config.go
package logger

// Level 日志等级
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
	PanicLevel Level = "panic"
	FatalLevel Level = "fatal"
)

// Format 日志格式
type Format string

const (
	JSONFormat    Format = "json"
	ConsoleFormat Format = "console"
)

// RotationType 轮换类型
type RotationType string

const (
	RotationBySize RotationType = "size"
	RotationByTime RotationType = "time"
)

// Config 日志配置
type Config struct {
	// 基础配置
	Level  Level  `mapstructure:"level"`  // 日志等级
	Format Format `mapstructure:"format"` // 输出格式 (json/console)

	// 输出配置
	EnableConsole bool   `mapstructure:"enable_console"` // 启用控制台输出
	EnableFile    bool   `mapstructure:"enable_file"`    // 启用文件输出
	OutputPath    string `mapstructure:"output_path"`    // 日志文件路径

	// 时间格式
	TimeFormat string `mapstructure:"time_format"`

	// 轮换配置
	Rotation RotationConfig `mapstructure:"rotation"`

	// 堆栈跟踪
	EnableStacktrace bool  `mapstructure:"enable_stacktrace"`
	StacktraceLevel  Level `mapstructure:"stacktrace_level"`

	// 开发模式 (彩色输出、可读时间)
	Development bool `mapstructure:"development"`
}

// RotationConfig 轮换配置
type RotationConfig struct {
	Type RotationType `mapstructure:"type"` // 轮换类型: size 或 time

	// 按大小轮换 (lumberjack)
	MaxSize    int  `mapstructure:"max_size"`    // 单个文件最大体积 (MB)
	MaxBackups int  `mapstructure:"max_backups"` // 保留的旧文件个数
	MaxAge     int  `mapstructure:"max_age"`     // 保留天数
	Compress   bool `mapstructure:"compress"`    // 压缩旧文件

	// 按时间轮换 (file-rotatelogs)
	RotationTime string `mapstructure:"rotation_time"` // 轮换间隔，如 "24h"
	MaxAgeTime   string `mapstructure:"max_age_time"`  // 保留时长，如 "168h"
}

// DefaultConfig 返回默认配置 (仅控制台输出)
func DefaultConfig() *Config {
	return &Config{
		Level:         InfoLevel,
		Format:        JSONFormat,
		EnableConsole: true,
		Rotation: RotationConfig{
			Type:       RotationBySize,
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     7,
		},
		StacktraceLevel: ErrorLevel,
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if !c.EnableConsole && !c.EnableFile {
		return ErrNoOutputEnabled
	}
	if c.EnableFile && c.OutputPath == "" {
		return ErrInvalidOutputPath
	}
	return nil
}
