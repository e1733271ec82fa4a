package model

// RephraseResponse 语气改写响应
type RephraseResponse struct {
	OriginalText  string `json:"original_text" example:"I need to attend a meeting tomorrow."`
	Mood          string `json:"mood" example:"excited"`
	RephrasedText string `json:"rephrased_text" example:"Can't wait for tomorrow's meeting!"`
}

// GrammarFixResponse 语法修正响应
type GrammarFixResponse struct {
	OriginalText  string `json:"original_text" example:"I has went to the store yesterday."`
	CorrectedText string `json:"corrected_text" example:"I went to the store yesterday."`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Detail string `json:"detail" example:"Invalid mood. Available moods: happy, sad"`
}

// IndexResponse 首页说明
type IndexResponse struct {
	Message       string        `json:"message"`
	Documentation string        `json:"documentation"`
	Features      IndexFeatures `json:"features"`
}

// IndexFeatures 功能列表
type IndexFeatures struct {
	Rephrase   RephraseFeature   `json:"rephrase"`
	GrammarFix GrammarFixFeature `json:"grammar_fix"`
}

// RephraseFeature 改写接口说明
type RephraseFeature struct {
	Endpoint       string          `json:"endpoint"`
	Example        RephraseRequest `json:"example"`
	AvailableMoods []string        `json:"available_moods"`
}

// GrammarFixFeature 语法修正接口说明
type GrammarFixFeature struct {
	Endpoint string            `json:"endpoint"`
	Example  GrammarFixRequest `json:"example"`
}
