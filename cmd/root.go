package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rephraser/internal/config"
	"rephraser/internal/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rephraser",
	Short: "Rephraser - mood-based text rephrasing API",
	Long: `Rephraser exposes an HTTP API that rewrites text in a requested mood
or fixes its grammar using an OpenAI-compatible LLM provider (Groq).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./configs/config.yaml)")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// .env 文件可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	var err error
	cfg, err = loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	log.Debug().Str("config_file", viper.ConfigFileUsed()).Msg("configuration loaded")
}

// loadConfig 读取配置文件、环境变量和默认值，反序列化到结构体
func loadConfig(v *viper.Viper, file string) (*config.Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.rephraser")
	}

	// 环境变量设置
	v.SetEnvPrefix("REPHRASER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 兼容 GROQ_API_KEY
	_ = v.BindEnv("ai.api_key", "REPHRASER_AI_API_KEY", "GROQ_API_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Fprintln(os.Stderr, "No config file found, using defaults and environment variables")
	}

	c := &config.Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	c.Normalize()
	return c, nil
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "Mood-Based Text Rephraser")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.description", "API for rephrasing text according to specified mood using Groq AI")

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "30s")
	// 需大于 ai.timeout，否则响应会在模型返回前被截断
	v.SetDefault("server.write_timeout", "90s")

	// AI
	v.SetDefault("ai.provider", "groq")
	v.SetDefault("ai.base_url", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("ai.model", "llama3-70b-8192")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.options.temperature", 0.7)
	v.SetDefault("ai.options.max_tokens", 1024)

	// Moods
	v.SetDefault("moods", config.DefaultMoods)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.time_format", "RFC3339")

	// Redis（addr 为空表示不启用缓存）
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "1h")
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return cfg
}
