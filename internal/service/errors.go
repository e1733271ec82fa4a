package service

import (
	"errors"
	"fmt"
	"strings"

	"rephraser/internal/pkg/groq"
)

// Kind 错误分类，HTTP 层据此决定状态码
type Kind int

const (
	// KindInvalidInput 调用方输入不合法（如语气不在列表中），不会发起外部调用
	KindInvalidInput Kind = iota + 1
	// KindUpstream 无法连接提供方或提供方返回非 2xx
	KindUpstream
	// KindParse 提供方返回 2xx 但响应结构不符合预期
	KindParse
	// KindInternal 其他内部错误
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindUpstream:
		return "upstream"
	case KindParse:
		return "parse"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error 服务层错误，Message 直接作为响应 detail
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf 返回错误分类，非 *Error 视为内部错误
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// newInvalidMoodError 列出全部可用语气（保持配置顺序）
func newInvalidMoodError(moods []string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: "Invalid mood. Available moods: " + strings.Join(moods, ", "),
	}
}

// classify 将模型调用错误转换为服务层错误
func classify(provider string, err error) *Error {
	var te *groq.TransportError
	if errors.As(err, &te) {
		return &Error{
			Kind:    KindUpstream,
			Message: fmt.Sprintf("Error contacting %s: %s", provider, te.Error()),
			Err:     err,
		}
	}

	var pe *groq.ParseError
	if errors.As(err, &pe) {
		return &Error{
			Kind:    KindParse,
			Message: fmt.Sprintf("Error parsing %s response: %s", provider, pe.Error()),
			Err:     err,
		}
	}

	return &Error{
		Kind:    KindInternal,
		Message: "Internal error: " + err.Error(),
		Err:     err,
	}
}
