package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rephraser/internal/model"
)

// 对外公布的路径
const (
	RephrasePath   = "/api/v1/rephrase"
	FixGrammarPath = "/api/v1/keyboard/fix-grammar"
	DocsPath       = "/swagger/index.html"
)

// IndexHandler 首页，返回接口说明
type IndexHandler struct {
	body model.IndexResponse
}

// NewIndexHandler 创建首页处理器，响应内容在启动时固定
func NewIndexHandler(appName string, moods []string) *IndexHandler {
	return &IndexHandler{
		body: model.IndexResponse{
			Message:       appName + " API",
			Documentation: DocsPath,
			Features: model.IndexFeatures{
				Rephrase: model.RephraseFeature{
					Endpoint: RephrasePath,
					Example: model.RephraseRequest{
						Text: "I need to attend a meeting tomorrow.",
						Mood: "excited",
					},
					AvailableMoods: append([]string(nil), moods...),
				},
				GrammarFix: model.GrammarFixFeature{
					Endpoint: FixGrammarPath,
					Example: model.GrammarFixRequest{
						Text: "I has went to the store yesterday.",
					},
				},
			},
		},
	}
}

// Index 接口说明
//
//	@Summary	Usage information
//	@Produce	json
//	@Success	200	{object}	model.IndexResponse
//	@Router		/ [get]
func (h *IndexHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, h.body)
}
