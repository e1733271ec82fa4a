// Package groq 实现 OpenAI chat completions 兼容协议的 Groq 客户端，
// 满足 eino 的 model.BaseChatModel 接口。
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	"rephraser/internal/pkg/ctxutil"
)

const (
	// DefaultURL Groq chat completions 地址
	DefaultURL = "https://api.groq.com/openai/v1/chat/completions"

	// 错误信息中最多保留的响应体长度
	maxErrorBody = 4 << 10
)

// Config 客户端配置
type Config struct {
	URL         string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration // 0 表示不限制
	HTTPClient  *http.Client  // 可选，测试时注入
}

// Client Groq ChatModel
type Client struct {
	url         string
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
	httpClient  *http.Client
}

var _ model.BaseChatModel = (*Client)(nil)

// NewClient 创建 Groq 客户端
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("groq: config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("groq: api key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("groq: model is required")
	}

	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		url:         url,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  httpClient,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// 指针字段用于区分“缺失”和“空值”
type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate 发送一次补全请求，返回第一个 choice 的内容（原样返回，不做裁剪）
func (c *Client) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	options := model.GetCommonOptions(&model.Options{
		Model:       &c.model,
		Temperature: &c.temperature,
		MaxTokens:   &c.maxTokens,
	}, opts...)

	reqBody := chatRequest{
		Model:       *options.Model,
		Messages:    make([]chatMessage, 0, len(input)),
		Temperature: *options.Temperature,
		MaxTokens:   *options.MaxTokens,
	}
	for _, m := range input {
		reqBody.Messages = append(reqBody.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	logger := log.With().
		Str("request_id", ctxutil.RequestID(ctx)).
		Str("model", reqBody.Model).
		Logger()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("groq request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Error().Int("status", resp.StatusCode).Msg("groq returned non-2xx status")
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(detail))}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, &ParseError{Reason: "decode response: " + err.Error()}
	}

	if len(chatResp.Choices) == 0 {
		return nil, &ParseError{Reason: "choices[0]: list index out of range"}
	}
	first := chatResp.Choices[0]
	if first.Message == nil {
		return nil, &ParseError{Reason: "choices[0]: missing key 'message'"}
	}
	if first.Message.Content == nil {
		return nil, &ParseError{Reason: "choices[0].message: missing key 'content'"}
	}

	logger.Debug().Dur("latency", time.Since(start)).Msg("groq request completed")

	out := schema.AssistantMessage(*first.Message.Content, nil)
	out.ResponseMeta = &schema.ResponseMeta{FinishReason: first.FinishReason}
	if chatResp.Usage != nil {
		out.ResponseMeta.Usage = &schema.TokenUsage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Stream 不支持增量输出，整体生成后作为单个分片返回
func (c *Client) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := c.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}
