package groq

import "fmt"

// TransportError 无法连接或收到非 2xx 响应
type TransportError struct {
	StatusCode int    // 0 表示未收到响应
	Body       string // 提供方返回的错误详情
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError 2xx 响应但响应体不符合预期结构
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return e.Reason
}
