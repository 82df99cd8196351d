// Package config 网关的配置装载层
// 配置文件按 server/log 等区块组织，各组件用 UnmarshalKey 取自己的区块
package config

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Manager 配置管理器
// 装载与监听在启动阶段完成，读取路径上并发安全
type Manager interface {
	// LoadFile 装载配置文件，格式由扩展名或 WithConfigType 决定
	LoadFile(path string) error
	// BindEnv 绑定环境变量覆盖，prefix 为 "XOPENAPI" 时
	// XOPENAPI_SERVER_PORT 覆盖 server.port
	BindEnv(prefix string)
	// Unmarshal 解析整个配置到结构体
	Unmarshal(v any) error
	// UnmarshalKey 解析单个区块，如 "server"、"log"
	UnmarshalKey(key string, v any) error
	// GetString 读取字符串配置项
	GetString(key string) string
	// GetInt 读取整数配置项
	GetInt(key string) int
	// Watch 监听配置文件变化，变化时以文件路径回调
	Watch(onChange func(file string)) error
	// IsSet 检查配置项是否出现在文件、环境或默认值中
	IsSet(key string) bool
	// AllSettings 导出全部生效配置，用于启动日志
	AllSettings() map[string]any
}

type manager struct {
	viper     *viper.Viper
	mu        sync.RWMutex
	onChange  []func(string)
	watchOnce sync.Once
}

// NewManager 创建配置管理器
func NewManager(opts ...Option) Manager {
	m := &manager{viper: viper.New()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *manager) LoadFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "config: read %s", path)
	}
	return nil
}

func (m *manager) BindEnv(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindEnv(prefix)
}

// bindEnv 由 BindEnv 持锁调用，构造阶段经选项无锁调用
func (m *manager) bindEnv(prefix string) {
	if prefix != "" {
		m.viper.SetEnvPrefix(prefix)
	}
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()
}

func (m *manager) Unmarshal(v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.viper.Unmarshal(v); err != nil {
		return errors.Wrap(err, "config: unmarshal")
	}
	return nil
}

func (m *manager) UnmarshalKey(key string, v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.viper.UnmarshalKey(key, v); err != nil {
		return errors.Wrapf(err, "config: unmarshal section %s", key)
	}
	return nil
}

func (m *manager) GetString(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.GetString(key)
}

func (m *manager) GetInt(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.GetInt(key)
}

// Watch 注册变化回调，首次调用启动文件监听
func (m *manager) Watch(onChange func(file string)) error {
	m.mu.Lock()
	m.onChange = append(m.onChange, onChange)
	m.mu.Unlock()

	m.watchOnce.Do(func() {
		m.viper.OnConfigChange(func(e fsnotify.Event) {
			m.mu.RLock()
			callbacks := m.onChange
			m.mu.RUnlock()

			for _, cb := range callbacks {
				cb(e.Name)
			}
		})
		m.viper.WatchConfig()
	})

	return nil
}

func (m *manager) IsSet(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.IsSet(key)
}

func (m *manager) AllSettings() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.AllSettings()
}
