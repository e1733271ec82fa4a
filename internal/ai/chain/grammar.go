package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
)

// GrammarChain 语法修正链
type GrammarChain struct {
	chatModel model.BaseChatModel
	template  prompt.ChatTemplate
}

// NewGrammarChain 创建语法修正链
func NewGrammarChain(chatModel model.BaseChatModel) (*GrammarChain, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is nil")
	}
	return &GrammarChain{
		chatModel: chatModel,
		template:  newGrammarTemplate(),
	}, nil
}

// Run 执行语法修正
func (c *GrammarChain) Run(ctx context.Context, text string) (*Result, error) {
	messages, err := c.template.Format(ctx, map[string]any{"text": text})
	if err != nil {
		return nil, fmt.Errorf("format grammar prompt: %w", err)
	}

	resp, err := c.chatModel.Generate(ctx, messages, model.WithTemperature(GrammarTemperature))
	if err != nil {
		return nil, err
	}

	return toResult(resp), nil
}
