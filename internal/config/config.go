package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingAPIKey 未配置 GROQ_API_KEY 时服务拒绝启动
var ErrMissingAPIKey = errors.New("GROQ_API_KEY environment variable must be set")

// DefaultMoods 默认可用语气列表（顺序即错误提示中的顺序）
var DefaultMoods = []string{
	"happy", "sad", "excited", "angry", "calm", "professional",
	"casual", "formal", "humorous", "serious", "romantic",
	"nostalgic", "optimistic", "pessimistic", "confident",
}

// Config 应用配置根结构
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	AI     AIConfig     `mapstructure:"ai"`
	Moods  []string     `mapstructure:"moods"`
	Log    LogConfig    `mapstructure:"log"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// AppConfig 项目信息，用于首页和 Swagger
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AIConfig LLM 服务配置
type AIConfig struct {
	Provider string          `mapstructure:"provider"`
	APIKey   string          `mapstructure:"api_key"`
	BaseURL  string          `mapstructure:"base_url"` // chat completions 完整地址
	Model    string          `mapstructure:"model"`
	Timeout  time.Duration   `mapstructure:"timeout"` // 0 表示不限制
	Options  AIOptionsConfig `mapstructure:"options"`
}

// AIOptionsConfig AI 模型参数
type AIOptionsConfig struct {
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// RedisConfig Redis 配置，Addr 为空时不启用补全缓存
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AI.APIKey) == "" {
		return ErrMissingAPIKey
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if c.AI.BaseURL == "" {
		return errors.New("ai.base_url is required")
	}
	if c.AI.Model == "" {
		return errors.New("ai.model is required")
	}
	if c.AI.Options.MaxTokens <= 0 {
		return fmt.Errorf("invalid ai.options.max_tokens: %d", c.AI.Options.MaxTokens)
	}
	if c.AI.Timeout < 0 {
		return errors.New("ai.timeout must not be negative")
	}

	if len(c.Moods) == 0 {
		return errors.New("at least one mood must be configured")
	}
	for i, m := range c.Moods {
		trimmed := strings.TrimSpace(m)
		if trimmed == "" {
			return fmt.Errorf("mood #%d is empty", i)
		}
		if trimmed != m {
			return fmt.Errorf("mood #%d %q has surrounding whitespace", i, m)
		}
	}

	if c.AI.Timeout > 0 && c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.AI.Timeout {
		return fmt.Errorf("server.write_timeout (%s) must be greater than ai.timeout (%s)",
			c.Server.WriteTimeout, c.AI.Timeout)
	}

	return nil
}

// Normalize 裁剪语气两侧空白，REPHRASER_MOODS="happy, sad" 按逗号拆分后会带空格
func (c *Config) Normalize() {
	moods := make([]string, len(c.Moods))
	for i, m := range c.Moods {
		moods[i] = strings.TrimSpace(m)
	}
	c.Moods = moods
}

// ProviderName 错误提示中使用的提供方名称
func (c *AIConfig) ProviderName() string {
	switch strings.ToLower(c.Provider) {
	case "groq", "":
		return "Groq API"
	default:
		return c.Provider
	}
}
