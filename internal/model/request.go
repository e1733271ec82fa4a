package model

// RephraseRequest 语气改写请求，mood 大小写不敏感
// mood 字段必须存在，但空串等非法取值由服务层校验并返回可用语气列表
type RephraseRequest struct {
	Text string `json:"text" binding:"required" example:"I need to attend a meeting tomorrow."`
	Mood string `json:"mood" validate:"required" example:"excited"`
}

// GrammarFixRequest 语法修正请求
type GrammarFixRequest struct {
	Text string `json:"text" binding:"required" example:"I has went to the store yesterday."`
}
