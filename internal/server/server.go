package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rephraser/docs"
	"rephraser/internal/ai/component"
	"rephraser/internal/config"
	"rephraser/internal/handler"
	"rephraser/internal/pkg/cache"
	"rephraser/internal/server/middleware"
	"rephraser/internal/service"
)

// shutdownTimeout 优雅关闭等待时间
const shutdownTimeout = 10 * time.Second

// defaultDescription 生成文档中的原始描述，多次 New 时不重复追加
var defaultDescription = docs.SwaggerInfo.Description

// Server HTTP 服务器
type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	redis   *cache.RedisCache
	textSvc *service.TextService
}

// New 创建服务器实例，配置不合法（如缺少 API key）时返回错误
func New(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	chatModel, err := component.NewChatModel(context.Background(), &cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	// 初始化 Redis 补全缓存 (可选)
	var (
		redisCache *cache.RedisCache
		opts       []service.Option
	)
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without completion cache")
		} else {
			redisCache = rc
			opts = append(opts, service.WithCache(rc, rc.TTL()))
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", rc.TTL()).Msg("connected to Redis")
		}
	}

	textSvc, err := service.NewTextService(cfg, chatModel, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	log.Info().
		Str("provider", cfg.AI.Provider).
		Str("model", cfg.AI.Model).
		Int("moods", len(cfg.Moods)).
		Msg("initialized text service")

	srv := &Server{
		cfg:     cfg,
		engine:  engine,
		redis:   redisCache,
		textSvc: textSvc,
	}

	srv.setupRoutes()

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// 全局中间件，Recovery 在最内层：panic 请求仍带 request_id 并被记录、计数
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.Metrics())
	s.engine.Use(middleware.CORS())
	s.engine.Use(middleware.Recovery())

	// 首页
	indexHandler := handler.NewIndexHandler(s.cfg.App.Name, s.textSvc.Moods())
	s.engine.GET("/", indexHandler.Index)

	// 健康检查
	deps := map[string]handler.Pinger{}
	if s.redis != nil {
		deps["redis"] = s.redis
	}
	healthHandler := handler.NewHealthHandler(deps)
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// 监控
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger 文档
	if s.cfg.App.Name != "" {
		docs.SwaggerInfo.Title = s.cfg.App.Name
	}
	if s.cfg.App.Version != "" {
		docs.SwaggerInfo.Version = s.cfg.App.Version
	}
	desc := s.cfg.App.Description
	if desc == "" {
		desc = defaultDescription
	}
	var cacheTTL time.Duration
	if s.redis != nil {
		cacheTTL = s.redis.TTL()
	}
	docs.SwaggerInfo.Description = apiDescription(desc, cacheTTL)
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	textHandler := handler.NewTextHandler(s.textSvc)

	// API v1
	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/rephrase", textHandler.Rephrase)
		v1.POST("/fix-grammar", textHandler.FixGrammar)

		// 键盘客户端使用的路径
		keyboard := v1.Group("/keyboard")
		keyboard.POST("/rephrase", textHandler.Rephrase)
		keyboard.POST("/fix-grammar", textHandler.FixGrammar)
	}
}

// apiDescription 启用补全缓存时在文档描述中说明：相同请求在 TTL 内返回同一结果
func apiDescription(base string, cacheTTL time.Duration) string {
	if cacheTTL <= 0 {
		return base
	}
	return fmt.Sprintf("%s. Completion cache is enabled: identical requests return the same cached output for up to %s instead of a fresh completion.",
		strings.TrimSuffix(base, "."), cacheTTL)
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)

		if s.redis != nil {
			if cerr := s.redis.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("failed to close Redis connection")
			}
		}

		return err
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
