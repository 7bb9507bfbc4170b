package author

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// DeleteAuthorUseCase 删除作者用例
// 设计说明:
// 1. 名下图书及其书评由数据库外键级联删除
// 2. 取名下图书与删除作者放在同一事务,避免删除间隙有新图书写入
// 3. 级联删除不经过图书用例,被删图书的缓存在这里逐一失效
type DeleteAuthorUseCase struct {
	authorService author.Service
	bookService   book.Service
	txManager     *mysql.TxManager
	cache         *redis.BookCache
}

// NewDeleteAuthorUseCase 创建删除用例
func NewDeleteAuthorUseCase(authorService author.Service, bookService book.Service, txManager *mysql.TxManager, cache *redis.BookCache) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorService: authorService,
		bookService:   bookService,
		txManager:     txManager,
		cache:         cache,
	}
}

// Execute 执行删除用例
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	var books []*book.Book

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 删除前先取名下图书,拿到待失效的缓存Key
		var err error
		books, err = uc.bookService.ListBooksByAuthor(txCtx, id)
		if err != nil {
			return err
		}

		// 2. 删除作者(图书、书评级联删除)
		return uc.authorService.DeleteAuthor(txCtx, id)
	})
	if err != nil {
		return err
	}

	// 3. 失效被级联删除图书的缓存
	for _, b := range books {
		uc.cache.InvalidateBook(ctx, b.ID)
	}

	return nil
}
