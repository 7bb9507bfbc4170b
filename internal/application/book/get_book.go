package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// GetBookUseCase 图书详情用例
// 设计说明:
// 1. Cache-Aside:先查缓存,未命中回源数据库并回填
// 2. 详情投影的autor是完整的作者表示(含名下图书数量)
type GetBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(bookService book.Service, cache *redis.BookCache) *GetBookUseCase {
	return &GetBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行查询用例
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookDetailDTO, error) {
	// 1. 查缓存
	cached, _ := uc.cache.GetDetail(ctx, id)
	if cached != nil {
		dto := ToBookDetailDTO(cached)
		return &dto, nil
	}

	// 2. 回源数据库
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	uc.cache.SetDetail(ctx, b)

	dto := ToBookDetailDTO(b)
	return &dto, nil
}
