// Package main 商城服务入口
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	authapp "github.com/wyfcoding/storefront/internal/auth/application"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	cartapp "github.com/wyfcoding/storefront/internal/cart/application"
	cartmongo "github.com/wyfcoding/storefront/internal/cart/infrastructure/persistence/mongo"
	carthttp "github.com/wyfcoding/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/storefront/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	catalogmsg "github.com/wyfcoding/storefront/internal/catalog/infrastructure/messaging"
	catalogmongo "github.com/wyfcoding/storefront/internal/catalog/infrastructure/persistence/mongo"
	cataloghttp "github.com/wyfcoding/storefront/internal/catalog/interfaces/http"
	notifyapp "github.com/wyfcoding/storefront/internal/notification/application"
	notifydomain "github.com/wyfcoding/storefront/internal/notification/domain"
	"github.com/wyfcoding/storefront/internal/notification/infrastructure/sender"
	orderapp "github.com/wyfcoding/storefront/internal/order/application"
	orderdomain "github.com/wyfcoding/storefront/internal/order/domain"
	ordermsg "github.com/wyfcoding/storefront/internal/order/infrastructure/messaging"
	ordermongo "github.com/wyfcoding/storefront/internal/order/infrastructure/persistence/mongo"
	orderhttp "github.com/wyfcoding/storefront/internal/order/interfaces/http"
	reviewapp "github.com/wyfcoding/storefront/internal/review/application"
	reviewmongo "github.com/wyfcoding/storefront/internal/review/infrastructure/persistence/mongo"
	reviewhttp "github.com/wyfcoding/storefront/internal/review/interfaces/http"
	userapp "github.com/wyfcoding/storefront/internal/user/application"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	usermsg "github.com/wyfcoding/storefront/internal/user/infrastructure/messaging"
	usermongo "github.com/wyfcoding/storefront/internal/user/infrastructure/persistence/mongo"
	userhttp "github.com/wyfcoding/storefront/internal/user/interfaces/http"
	wishlistapp "github.com/wyfcoding/storefront/internal/wishlist/application"
	wishlistmongo "github.com/wyfcoding/storefront/internal/wishlist/infrastructure/persistence/mongo"
	wishlisthttp "github.com/wyfcoding/storefront/internal/wishlist/interfaces/http"
	"github.com/wyfcoding/storefront/pkg/cache"
	"github.com/wyfcoding/storefront/pkg/config"
	"github.com/wyfcoding/storefront/pkg/db"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/metrics"
	"github.com/wyfcoding/storefront/pkg/middleware"
	"github.com/wyfcoding/storefront/pkg/mq"
	"github.com/wyfcoding/storefront/pkg/ratelimit"
	"github.com/wyfcoding/storefront/pkg/trace"
)

var configPath = flag.String("config", "configs/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 初始化配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting service",
		"service", cfg.ServiceName, "version", cfg.Version, "environment", cfg.Environment)

	// 3. 初始化链路追踪
	if cfg.Tracing.Enabled {
		shutdown, err := trace.InitTracer(cfg.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Fatal(ctx, "Failed to init tracer", "error", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "Failed to shutdown tracer", "error", err)
			}
		}()
	}

	// 4. 初始化指标
	metricsImpl := metrics.New(cfg.ServiceName)
	if err := metricsImpl.Register(); err != nil {
		logger.Fatal(ctx, "Failed to register metrics", "error", err)
	}
	if cfg.Metrics.Port > 0 {
		go func() {
			if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil && err != http.ErrServerClosed {
				logger.Error(ctx, "Metrics server stopped", "error", err)
			}
		}()
	}

	// 5. 初始化 MongoDB
	database, err := db.Init(db.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		ConnTimeout: cfg.Mongo.ConnTimeout,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	}, metricsImpl)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect MongoDB", "error", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warn(ctx, "Failed to close MongoDB", "error", err)
		}
	}()

	// 6. 初始化 Redis
	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to connect Redis", "error", err)
	}
	defer func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn(ctx, "Failed to close Redis", "error", err)
		}
	}()

	// 7. 初始化 Kafka 生产者（可选）
	var producer *mq.KafkaProducer
	if cfg.Kafka.Enabled {
		producer, err = mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "Failed to create Kafka producer", "error", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.Warn(ctx, "Failed to close Kafka producer", "error", err)
			}
		}()
	}

	// 8. 初始化仓储并建索引
	productRepo := catalogmongo.NewProductRepository(database)
	cartRepo := cartmongo.NewCartRepository(database)
	orderRepo := ordermongo.NewOrderRepository(database)
	reviewRepo := reviewmongo.NewReviewRepository(database)
	wishlistRepo := wishlistmongo.NewWishlistRepository(database)
	userRepo := usermongo.NewUserRepository(database)

	indexCtx, cancelIndex := context.WithTimeout(ctx, 30*time.Second)
	defer cancelIndex()
	for name, ensure := range map[string]func(context.Context) error{
		"products":  productRepo.EnsureIndexes,
		"carts":     cartRepo.EnsureIndexes,
		"orders":    orderRepo.EnsureIndexes,
		"reviews":   reviewRepo.EnsureIndexes,
		"wishlists": wishlistRepo.EnsureIndexes,
		"users":     userRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Fatal(ctx, "Failed to ensure indexes", "collection", name, "error", err)
		}
	}

	// 9. 初始化事件发布器（Kafka 未启用时为 nil，服务内部做判空）
	var catalogPublisher catalogdomain.EventPublisher
	var orderPublisher orderdomain.EventPublisher
	var userPublisher userdomain.EventPublisher
	if producer != nil {
		catalogPublisher = catalogmsg.NewKafkaEventPublisher(producer)
		orderPublisher = ordermsg.NewKafkaEventPublisher(producer)
		userPublisher = usermsg.NewKafkaEventPublisher(producer)
	}

	// 10. 初始化邮件通道
	var mailSender notifydomain.Sender
	if cfg.SMTP.Enabled {
		mailSender = sender.NewSMTPSender(cfg.SMTP)
	} else {
		mailSender = sender.NewMockSender()
	}
	mailer := notifyapp.NewMailer(mailSender, cfg.SMTP.ResetBaseURL, metricsImpl)

	// 11. 初始化应用服务
	tokenSvc := authapp.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpireHours)*time.Hour)

	catalogCmd := catalogapp.NewCatalogCommandService(productRepo, catalogPublisher, redisCache)
	catalogQuery := catalogapp.NewCatalogQueryService(productRepo, redisCache)
	cartSvc := cartapp.NewCartApplicationService(cartRepo, productRepo, metricsImpl)
	userCmd := userapp.NewUserCommandService(userRepo, tokenSvc, userPublisher, mailer)
	userQuery := userapp.NewUserQueryService(userRepo)
	orderCmd := orderapp.NewOrderCommandService(orderRepo, cartRepo, orderPublisher, mailer, metricsImpl)
	orderQuery := orderapp.NewOrderQueryService(orderRepo, userQuery)
	reviewSvc := reviewapp.NewReviewApplicationService(reviewRepo, productRepo, redisCache, metricsImpl)
	wishlistSvc := wishlistapp.NewWishlistApplicationService(wishlistRepo, productRepo)

	// 12. 组装 HTTP 路由
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.ServiceName),
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
		middleware.CacheControlMiddleware(),
		middleware.MetricsMiddleware(metricsImpl),
	)
	if cfg.RateLimit.Enabled {
		limiter := ratelimit.NewRedisRateLimiter(redisCache.GetClient())
		router.Use(middleware.RateLimitMiddleware(limiter, cfg.RateLimit))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.ServiceName, "version": cfg.Version})
	})

	api := router.Group("/api/v1")
	authed := api.Group("", authmw.RequireAuth(tokenSvc))
	admin := api.Group("", authmw.RequireAuth(tokenSvc), authmw.RequireAdmin())

	cataloghttp.NewCatalogHandler(catalogCmd, catalogQuery).RegisterRoutes(api, admin)
	carthttp.NewCartHandler(cartSvc).RegisterRoutes(authed)
	orderhttp.NewOrderHandler(orderCmd, orderQuery).RegisterRoutes(authed, admin)
	reviewhttp.NewReviewHandler(reviewSvc).RegisterRoutes(api, authed)
	wishlisthttp.NewWishlistHandler(wishlistSvc).RegisterRoutes(authed)
	userhttp.NewUserHandler(userCmd, userQuery).RegisterRoutes(api, authed)

	// 13. 启动 HTTP 服务并等待退出信号
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Forced shutdown", "error", err)
	}
	logger.Info(ctx, "Server exited")
}
