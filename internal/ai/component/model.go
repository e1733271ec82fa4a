package component

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"

	"rephraser/internal/config"
	"rephraser/internal/pkg/groq"
)

// NewChatModel 创建 ChatModel
// 目前只接入 Groq（OpenAI 兼容协议）
func NewChatModel(_ context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	switch strings.ToLower(cfg.Provider) {
	case "groq", "":
		return newGroqChatModel(cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// newGroqChatModel 创建 Groq ChatModel
func newGroqChatModel(cfg *config.AIConfig) (model.BaseChatModel, error) {
	return groq.NewClient(&groq.Config{
		URL:         cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: float32(cfg.Options.Temperature),
		MaxTokens:   cfg.Options.MaxTokens,
		Timeout:     cfg.Timeout,
	})
}
