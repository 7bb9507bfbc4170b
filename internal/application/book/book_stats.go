package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// BookStatsUseCase 图书评分统计用例
// 设计说明:
// 1. 均值在数据库侧用AVG聚合,跳过无rating的书评
// 2. 统计结果缓存TTL较短(写入频繁时失真窗口小)
// 3. 响应携带图书标题,回源时顺带取图书基本信息
type BookStatsUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewBookStatsUseCase 创建统计用例
func NewBookStatsUseCase(bookService book.Service, cache *redis.BookCache) *BookStatsUseCase {
	return &BookStatsUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// BookStatsResponse 评分统计响应DTO
type BookStatsResponse struct {
	LibroID          uint     `json:"libro_id"`
	Titulo           string   `json:"titulo"`
	RatingPromedio   *float64 `json:"rating_promedio"`
	TotalResenas     int64    `json:"total_resenas"`
	ResenasConRating int64    `json:"resenas_con_rating"`
}

// Execute 执行统计用例
func (uc *BookStatsUseCase) Execute(ctx context.Context, id uint) (*BookStatsResponse, error) {
	// 1. 图书基本信息(标题);不存在时在这里就得到404类错误
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 查统计缓存
	stats, _ := uc.cache.GetStats(ctx, id)
	if stats == nil {
		// 3. 回源数据库聚合并回填
		stats, err = uc.bookService.GetReviewStats(ctx, id)
		if err != nil {
			return nil, err
		}
		uc.cache.SetStats(ctx, id, stats)
	}

	return &BookStatsResponse{
		LibroID:          b.ID,
		Titulo:           b.Title,
		RatingPromedio:   stats.AverageRating,
		TotalResenas:     stats.TotalReviews,
		ResenasConRating: stats.RatedReviews,
	}, nil
}
