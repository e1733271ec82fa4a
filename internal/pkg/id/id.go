package id

import (
	"github.com/google/uuid"
)

// New 生成新的请求 ID（UUID v4 字符串）
func New() string {
	return uuid.New().String()
}

// IsValid 验证UUID格式是否有效
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// FromHeader 复用调用方传入的合法 ID（规范化为小写带连字符格式），否则生成新 ID
func FromHeader(v string) string {
	if v != "" {
		if u, err := uuid.Parse(v); err == nil {
			return u.String()
		}
	}
	return New()
}
