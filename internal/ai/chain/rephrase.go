package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// Result 一次补全的结果
type Result struct {
	Text         string // 模型输出（原样）
	PromptTokens int    // 输入 token 数
	OutputTokens int    // 输出 token 数
}

// RephraseChain 语气改写链
// 工作流: (text, mood) -> Prompt模板 -> ChatModel -> 改写后的文本
type RephraseChain struct {
	chatModel model.BaseChatModel
	template  prompt.ChatTemplate
}

// NewRephraseChain 创建语气改写链
func NewRephraseChain(chatModel model.BaseChatModel) (*RephraseChain, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is nil")
	}
	return &RephraseChain{
		chatModel: chatModel,
		template:  newRephraseTemplate(),
	}, nil
}

// Run 执行改写，mood 由调用方预先校验
func (c *RephraseChain) Run(ctx context.Context, text, mood string) (*Result, error) {
	messages, err := c.template.Format(ctx, map[string]any{
		"text": text,
		"mood": mood,
	})
	if err != nil {
		return nil, fmt.Errorf("format rephrase prompt: %w", err)
	}

	// 使用模型默认的 temperature / max_tokens
	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}

	return toResult(resp), nil
}

// toResult 提取文本和 token 使用量
func toResult(resp *schema.Message) *Result {
	res := &Result{Text: resp.Content}
	if resp.ResponseMeta != nil && resp.ResponseMeta.Usage != nil {
		res.PromptTokens = resp.ResponseMeta.Usage.PromptTokens
		res.OutputTokens = resp.ResponseMeta.Usage.CompletionTokens
	}
	return res
}
