package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal HTTP 请求数（按方法、路由、状态码）
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rephraser_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// CompletionDuration LLM 调用耗时（按操作、结果）
	CompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rephraser_completion_duration_seconds",
		Help:    "Time spent waiting for the LLM provider.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"operation", "outcome"})

	// InputChars 输入文本长度分布
	InputChars = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rephraser_input_chars",
		Help:    "Number of characters in the submitted text.",
		Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"operation"})

	// CacheLookups 补全缓存查询（hit/miss/error）
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rephraser_cache_lookups_total",
		Help: "Completion cache lookups by result.",
	}, []string{"result"})
)

// 调用结果标签
const (
	OutcomeOK        = "ok"
	OutcomeTransport = "transport_error"
	OutcomeParse     = "parse_error"
	OutcomeError     = "error"
)
