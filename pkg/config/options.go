package config

// Option 管理器的创建选项
type Option func(*manager)

// WithDefaults 预置默认值，配置文件未覆盖的键按此取值
func WithDefaults(defaults map[string]any) Option {
	return func(m *manager) {
		for key, value := range defaults {
			m.viper.SetDefault(key, value)
		}
	}
}

// WithConfigType 显式声明配置格式（yaml/json/toml）
// 文件路径带扩展名时可省略
func WithConfigType(configType string) Option {
	return func(m *manager) {
		m.viper.SetConfigType(configType)
	}
}

// WithEnvPrefix 创建时即绑定环境变量前缀，等价于随后调用 BindEnv
func WithEnvPrefix(prefix string) Option {
	return func(m *manager) {
		m.bindEnv(prefix)
	}
}
