//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
	provideBookCache,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository, // 作者仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewReviewRepository, // 书评仓储
	mysql.NewTxManager,        // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	author.NewService, // 作者领域服务
	book.NewService,   // 图书领域服务
	review.NewService, // 书评领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,

	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewBookStatsUseCase,
	appbook.NewBooksByAuthorUseCase,
	appbook.NewAuthorBooksUseCase,

	appreview.NewCreateReviewUseCase,
	appreview.NewGetReviewUseCase,
	appreview.NewListReviewsUseCase,
	appreview.NewUpdateReviewUseCase,
	appreview.NewDeleteReviewUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler, // 作者处理器
	handler.NewBookHandler,   // 图书处理器
	handler.NewReviewHandler, // 书评处理器
)

// provideBookCache 从配置与Redis客户端创建图书缓存
// 教学要点：NewBookCache的TTL参数需要从Config提取，Wire无法自动知道
// 如何从Config拆出两个time.Duration，所以需要手动编写Provider
func provideBookCache(cfg *config.Config, client *goredis.Client) *redis.BookCache {
	return redis.NewBookCache(client, cfg.Cache.DetailTTL, cfg.Cache.StatsTTL)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Metrics(), gin.Recovery())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}

	// 健康检查、/metrics、Swagger文档随业务路由一并注册
	registerRoutes(r, authorHandler, bookHandler, reviewHandler)
	return r
}

// InitializeApp 初始化整个应用
// Wire会按正确的顺序调用所有构造函数,生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
