package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	WebSocket WebSocketConfig `yaml:"websocket"`
	Log       LogConfig       `yaml:"log"`
}

// LogConfig 日志配置（级别支持热更新）
type LogConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// HTTPPort 监听地址，例如 ":8080"
	HTTPPort string `yaml:"http_port"`
}

// AuthConfig 管理员凭证配置（HTTP Basic）
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WebSocketConfig WebSocket 配置
type WebSocketConfig struct {
	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
	// SendBufferSize 每个连接的发送队列长度，写满即断开该连接
	SendBufferSize int `yaml:"send_buffer_size"`
}

// NewConfig 创建配置（默认值 + 配置文件 + 环境变量覆盖）
func NewConfig() *Config {
	cfg := defaultConfig()

	// 配置文件可选，不存在时静默使用默认值
	if path := ConfigPath(); path != "" {
		if err := cfg.loadFile(path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "load config file %s: %v\n", path, err)
		}
	}

	cfg.applyEnv()
	return cfg
}

// defaultConfig 默认配置
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: ":8080",
		},
		Auth: AuthConfig{
			Username: "admin",
			Password: "admin",
		},
		WebSocket: WebSocketConfig{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			SendBufferSize:  256,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigPath 配置文件路径，默认 config.yaml
func ConfigPath() string {
	if path := os.Getenv("TODO_CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

// Reload 重新读取配置文件和环境变量（热更新时调用）
func (c *Config) Reload() (*Config, error) {
	cfg := defaultConfig()
	if path := ConfigPath(); path != "" {
		if err := cfg.loadFile(path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// loadFile 从 yaml 文件加载配置
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// applyEnv 环境变量覆盖
func (c *Config) applyEnv() {
	if port := os.Getenv("TODO_HTTP_PORT"); port != "" {
		if port[0] != ':' {
			port = ":" + port
		}
		c.Server.HTTPPort = port
	}
	if user := os.Getenv("TODO_ADMIN_USERNAME"); user != "" {
		c.Auth.Username = user
	}
	if pass := os.Getenv("TODO_ADMIN_PASSWORD"); pass != "" {
		c.Auth.Password = pass
	}
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewAuthConfig 创建凭证配置
func NewAuthConfig(cfg *Config) *AuthConfig {
	return &cfg.Auth
}

// NewWebSocketConfig 创建 WebSocket 配置
func NewWebSocketConfig(cfg *Config) *WebSocketConfig {
	return &cfg.WebSocket
}
