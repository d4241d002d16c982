package main

import (
	"fmt"
	"net/http"
	"time"

	"vidcat-go/internal/api/handler"
	"vidcat-go/internal/api/middleware"
	"vidcat-go/internal/api/router"
	"vidcat-go/internal/config"
	"vidcat-go/internal/content"
	infraMinio "vidcat-go/internal/infra/minio"
	infraRedis "vidcat-go/internal/infra/redis"
	"vidcat-go/internal/ledger"
	"vidcat-go/internal/query"
	"vidcat-go/internal/registry"
	"vidcat-go/internal/service"
	"vidcat-go/pkg/logger"

	_ "vidcat-go/api/openapi"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Vidcat-Go API
// @version 1.0
// @description 视频目录服务 API（元数据注册、内容上传下载、点赞、检索）

// @contact.name API Support
// @contact.email support@vidcat.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化 Redis（令牌吊销名单）
	if err := infraRedis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to init redis", zap.Error(err))
	}
	defer infraRedis.Close()

	// 选择内容存储后端
	var store content.Store
	switch cfg.Storage.Backend {
	case "minio":
		if err := infraMinio.Init(&cfg.MinIO, cfg.Storage.Bucket); err != nil {
			logger.Fatal("Failed to init minio", zap.Error(err))
		}
		store = content.NewMinioStore(cfg.Storage.Bucket)
	default:
		fsStore, err := content.NewFSStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatal("Failed to init fs content store", zap.Error(err))
		}
		store = fsStore
	}

	// 核心组件：注册表（含 ID 分配器）、点赞账本、检索引擎
	reg := registry.New(registry.NewAllocator(), cfg.App.BaseURL)
	likes := ledger.New(reg)
	engine := query.NewEngine(reg)

	// 设置 Gin 模式
	gin.SetMode(cfg.App.Mode)

	// 创建 Gin 路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// 初始化依赖（核心 -> Service -> Handler）
	videoService := service.NewVideoService(reg, likes, store)
	likeService := service.NewLikeService(likes)
	searchService := service.NewSearchService(engine, likes)
	authService := service.NewAuthService(cfg.Users)

	videoHandler := handler.NewVideoHandler(videoService)
	likeHandler := handler.NewLikeHandler(likeService)
	searchHandler := handler.NewSearchHandler(searchService)
	authHandler := handler.NewAuthHandler(authService)

	authRequired := middleware.AuthRequired(authService.IsTokenRevoked)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler)
	r.GET("/", rootHandler)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, authHandler, videoHandler, likeHandler, searchHandler, authRequired)

	// 启动 HTTP 服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("base_url", cfg.App.BaseURL),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   cfg.App.Name,
		"version":   cfg.App.Version,
		"mode":      cfg.App.Mode,
	})
}

// rootHandler 根路径处理器
func rootHandler(c *gin.Context) {
	cfg := config.Get()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to %s API", cfg.App.Name),
		"project": cfg.App.Name,
		"version": cfg.App.Version,
		"mode":    cfg.App.Mode,
		"docs":    fmt.Sprintf("%s/swagger/index.html", cfg.App.BaseURL),
	})
}
