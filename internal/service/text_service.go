package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"

	"rephraser/internal/ai/chain"
	"rephraser/internal/config"
	"rephraser/internal/pkg/cache"
	"rephraser/internal/pkg/ctxutil"
	"rephraser/internal/pkg/metrics"
	mdl "rephraser/internal/model"
)

const (
	opRephrase = "rephrase"
	opGrammar  = "fix_grammar"
)

// Cache 补全缓存，Get 未命中返回 cache.ErrMiss
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Option TextService 可选项
type Option func(*TextService)

// WithCache 启用补全缓存
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *TextService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// TextService 文本改写 / 语法修正服务
type TextService struct {
	rephraseChain *chain.RephraseChain
	grammarChain  *chain.GrammarChain
	moods         []string
	provider      string
	model         string
	cache         Cache
	cacheTTL      time.Duration
}

// NewTextService 创建文本服务
func NewTextService(cfg *config.Config, chatModel model.BaseChatModel, opts ...Option) (*TextService, error) {
	rephraseChain, err := chain.NewRephraseChain(chatModel)
	if err != nil {
		return nil, err
	}
	grammarChain, err := chain.NewGrammarChain(chatModel)
	if err != nil {
		return nil, err
	}

	s := &TextService{
		rephraseChain: rephraseChain,
		grammarChain:  grammarChain,
		moods:         append([]string(nil), cfg.Moods...),
		provider:      cfg.AI.ProviderName(),
		model:         cfg.AI.Model,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Moods 可用语气（配置顺序）
func (s *TextService) Moods() []string {
	return append([]string(nil), s.moods...)
}

// ValidateMood 大小写不敏感地校验语气
func (s *TextService) ValidateMood(mood string) error {
	for _, m := range s.moods {
		if strings.EqualFold(m, mood) {
			return nil
		}
	}
	return newInvalidMoodError(s.moods)
}

// Rephrase 按语气改写文本，语气不合法时不会调用模型
func (s *TextService) Rephrase(ctx context.Context, req *mdl.RephraseRequest) (*mdl.RephraseResponse, error) {
	if err := s.ValidateMood(req.Mood); err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, opRephrase, req.Text, []string{req.Mood}, func(ctx context.Context) (*chain.Result, error) {
		return s.rephraseChain.Run(ctx, req.Text, req.Mood)
	})
	if err != nil {
		return nil, err
	}

	return &mdl.RephraseResponse{
		OriginalText:  req.Text,
		Mood:          req.Mood,
		RephrasedText: text,
	}, nil
}

// FixGrammar 修正语法，不做语气校验
func (s *TextService) FixGrammar(ctx context.Context, req *mdl.GrammarFixRequest) (*mdl.GrammarFixResponse, error) {
	text, err := s.complete(ctx, opGrammar, req.Text, nil, func(ctx context.Context) (*chain.Result, error) {
		return s.grammarChain.Run(ctx, req.Text)
	})
	if err != nil {
		return nil, err
	}

	return &mdl.GrammarFixResponse{
		OriginalText:  req.Text,
		CorrectedText: text,
	}, nil
}

// complete 查缓存 -> 调用链 -> 写缓存，失败结果不缓存
func (s *TextService) complete(ctx context.Context, op, text string, keyParts []string, run func(context.Context) (*chain.Result, error)) (string, error) {
	logger := log.With().
		Str("op", op).
		Str("request_id", ctxutil.RequestID(ctx)).
		Logger()

	metrics.InputChars.WithLabelValues(op).Observe(inputChars(text))

	var key string
	if s.cache != nil {
		key = cache.CompletionKey(append(append([]string{op, s.model}, keyParts...), text)...)
		var cached string
		err := s.cache.Get(ctx, key, &cached)
		switch {
		case err == nil:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			logger.Debug().Msg("completion cache hit")
			return cached, nil
		case errors.Is(err, cache.ErrMiss):
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		default:
			metrics.CacheLookups.WithLabelValues("error").Inc()
			logger.Warn().Err(err).Msg("completion cache lookup failed")
		}
	}

	start := time.Now()
	res, err := run(ctx)
	if err != nil {
		se := classify(s.provider, err)
		metrics.CompletionDuration.WithLabelValues(op, outcome(se.Kind)).Observe(time.Since(start).Seconds())
		logger.Error().Err(err).Str("kind", se.Kind.String()).Msg("completion failed")
		return "", se
	}
	metrics.CompletionDuration.WithLabelValues(op, metrics.OutcomeOK).Observe(time.Since(start).Seconds())

	logger.Info().
		Int("prompt_tokens", res.PromptTokens).
		Int("output_tokens", res.OutputTokens).
		Msg("completion finished")

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, res.Text, s.cacheTTL); err != nil {
			logger.Warn().Err(err).Msg("completion cache store failed")
		}
	}

	return res.Text, nil
}

// inputChars 文本的字符（rune）数
func inputChars(text string) float64 {
	return float64(utf8.RuneCountInString(text))
}

func outcome(k Kind) string {
	switch k {
	case KindUpstream:
		return metrics.OutcomeTransport
	case KindParse:
		return metrics.OutcomeParse
	default:
		return metrics.OutcomeError
	}
}
