package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"rephraser/internal/model"
)

// TextService 处理器依赖的服务接口
type TextService interface {
	Rephrase(ctx context.Context, req *model.RephraseRequest) (*model.RephraseResponse, error)
	FixGrammar(ctx context.Context, req *model.GrammarFixRequest) (*model.GrammarFixResponse, error)
	Moods() []string
}

// rephraseBody 改写请求绑定结构，mood 只要求存在，允许空串
type rephraseBody struct {
	Text string  `json:"text" binding:"required"`
	Mood *string `json:"mood" binding:"required"`
}

// TextHandler 文本处理器
type TextHandler struct {
	textSvc TextService
}

// NewTextHandler 创建文本处理器
func NewTextHandler(textSvc TextService) *TextHandler {
	return &TextHandler{
		textSvc: textSvc,
	}
}

// Rephrase 按语气改写文本
//
//	@Summary		Rephrase text in a mood
//	@Description	Rewrites the text so it expresses the requested mood. The mood is matched case-insensitively against the configured list.
//	@Tags			rephraser
//	@Accept			json
//	@Produce		json
//	@Param			request	body		model.RephraseRequest	true	"text and mood"
//	@Success		200		{object}	model.RephraseResponse
//	@Failure		400		{object}	model.ErrorResponse	"unknown mood"
//	@Failure		422		{object}	model.ErrorResponse	"malformed request"
//	@Failure		500		{object}	model.ErrorResponse	"provider failure"
//	@Router			/api/v1/rephrase [post]
func (h *TextHandler) Rephrase(c *gin.Context) {
	var body rephraseBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithBindError(c, err)
		return
	}

	req := &model.RephraseRequest{Text: body.Text, Mood: *body.Mood}
	resp, err := h.textSvc.Rephrase(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// FixGrammar 修正语法
//
//	@Summary		Fix grammar
//	@Description	Corrects grammar only, keeping meaning and tone.
//	@Tags			grammar
//	@Accept			json
//	@Produce		json
//	@Param			request	body		model.GrammarFixRequest	true	"text"
//	@Success		200		{object}	model.GrammarFixResponse
//	@Failure		422		{object}	model.ErrorResponse	"malformed request"
//	@Failure		500		{object}	model.ErrorResponse	"provider failure"
//	@Router			/api/v1/keyboard/fix-grammar [post]
func (h *TextHandler) FixGrammar(c *gin.Context) {
	var req model.GrammarFixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	resp, err := h.textSvc.FixGrammar(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
