package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// DeleteBookUseCase 删除图书用例
// 关联书评由数据库外键级联删除
type DeleteBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, cache *redis.BookCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	uc.cache.InvalidateBook(ctx, id)
	return nil
}
