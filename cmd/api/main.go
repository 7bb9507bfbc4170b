package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appauthor "github.com/xiebiao/biblioteca/internal/application/author"
	appbook "github.com/xiebiao/biblioteca/internal/application/book"
	appreview "github.com/xiebiao/biblioteca/internal/application/review"
	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/domain/review"
	"github.com/xiebiao/biblioteca/internal/infrastructure/config"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/biblioteca/internal/interface/http/handler"
	"github.com/xiebiao/biblioteca/internal/interface/http/middleware"
	"github.com/xiebiao/biblioteca/pkg/logger"
	"github.com/xiebiao/biblioteca/pkg/metrics"
	"github.com/xiebiao/biblioteca/pkg/response"
	"github.com/xiebiao/biblioteca/pkg/tracing"
)

// @title           Biblioteca API
// @version         1.0
// @description     图书目录服务:作者、图书、书评的REST API,支持过滤、搜索、排序、分页与评分聚合
// @BasePath        /api/v1

// main 主程序入口
// 说明：手动依赖注入(wire.go提供等价的Wire注入器)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("加载配置失败")
	}

	// 2. 初始化日志
	logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})

	log.Info().
		Int("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Str("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)).
		Str("redis", cfg.Redis.Addr()).
		Msg("配置加载成功")

	// 3. 初始化指标与追踪
	metrics.InitMetrics()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("初始化追踪失败")
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn().Err(err).Msg("关闭追踪失败")
			}
		}()
	}

	// 4. 初始化数据库与Redis连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化数据库失败")
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("初始化Redis失败")
	}

	// 5. 依赖注入（手动组装）
	// 依赖链:Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	txManager := mysql.NewTxManager(db)
	bookCache := redis.NewBookCache(redisClient, cfg.Cache.DetailTTL, cfg.Cache.StatsTTL)

	// 领域层
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo)
	reviewService := review.NewService(reviewRepo)

	// 应用层
	createAuthorUseCase := appauthor.NewCreateAuthorUseCase(authorService)
	getAuthorUseCase := appauthor.NewGetAuthorUseCase(authorService)
	listAuthorsUseCase := appauthor.NewListAuthorsUseCase(authorService)
	updateAuthorUseCase := appauthor.NewUpdateAuthorUseCase(authorService)
	deleteAuthorUseCase := appauthor.NewDeleteAuthorUseCase(authorService, bookService, txManager, bookCache)

	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, bookCache)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, bookCache)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService, bookCache)
	bookStatsUseCase := appbook.NewBookStatsUseCase(bookService, bookCache)
	booksByAuthorUseCase := appbook.NewBooksByAuthorUseCase(bookService)
	authorBooksUseCase := appbook.NewAuthorBooksUseCase(authorService, bookService)

	createReviewUseCase := appreview.NewCreateReviewUseCase(reviewService, bookCache)
	getReviewUseCase := appreview.NewGetReviewUseCase(reviewService)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewService)
	updateReviewUseCase := appreview.NewUpdateReviewUseCase(reviewService, bookCache)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(reviewService, bookCache)

	// 接口层
	authorHandler := handler.NewAuthorHandler(
		createAuthorUseCase, getAuthorUseCase, listAuthorsUseCase,
		updateAuthorUseCase, deleteAuthorUseCase, authorBooksUseCase,
	)
	bookHandler := handler.NewBookHandler(
		createBookUseCase, getBookUseCase, listBooksUseCase,
		updateBookUseCase, deleteBookUseCase, bookStatsUseCase, booksByAuthorUseCase,
	)
	reviewHandler := handler.NewReviewHandler(
		createReviewUseCase, getReviewUseCase, listReviewsUseCase,
		updateReviewUseCase, deleteReviewUseCase,
	)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(), middleware.Metrics(), gin.Recovery())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}

	// 7. 注册路由
	registerRoutes(r, authorHandler, bookHandler, reviewHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("服务启动")

	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("启动服务失败")
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, authorHandler *handler.AuthorHandler, bookHandler *handler.BookHandler, reviewHandler *handler.ReviewHandler) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.List)
			authors.POST("", authorHandler.Create)
			authors.GET("/:id", authorHandler.Get)
			authors.PUT("/:id", authorHandler.Update)
			authors.PATCH("/:id", authorHandler.Patch)
			authors.DELETE("/:id", authorHandler.Delete)
			authors.GET("/:id/libros", authorHandler.Books)
		}

		// 图书模块
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.POST("", bookHandler.Create)
			// 集合级自定义端点必须先于/:id注册
			books.GET("/por_autor", bookHandler.ByAuthor)
			books.GET("/:id", bookHandler.Get)
			books.PUT("/:id", bookHandler.Update)
			books.PATCH("/:id", bookHandler.Patch)
			books.DELETE("/:id", bookHandler.Delete)
			books.GET("/:id/rating_promedio", bookHandler.Stats)
		}

		// 书评模块
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.POST("", reviewHandler.Create)
			reviews.GET("/:id", reviewHandler.Get)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.PATCH("/:id", reviewHandler.Patch)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}
	}
}
