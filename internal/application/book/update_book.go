package book

import (
	"context"
	"time"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// UpdateBookUseCase 更新图书用例
// 全量更新(PUT)与部分更新(PATCH)共用:接口层全量时填满所有字段
type UpdateBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, cache *redis.BookCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// UpdateBookRequest 更新请求DTO
// nil字段表示不修改
type UpdateBookRequest struct {
	ID               uint
	Titulo           *string
	Autor            *uint
	FechaPublicacion *time.Time
	Resumen          *string
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDTO, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ID, req.Titulo, req.Autor, req.FechaPublicacion, req.Resumen)
	if err != nil {
		return nil, err
	}

	// 详情投影已失真,整体失效
	uc.cache.InvalidateBook(ctx, b.ID)

	// 回查一次:作者变更时预载的作者信息已过期
	full, err := uc.bookService.GetBookByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	dto := ToBookDTO(full)
	return &dto, nil
}
