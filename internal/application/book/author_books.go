package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/book"
)

// AuthorBooksUseCase 作者名下图书用例(对象级端点)
// 与BooksByAuthorUseCase的差别:先校验作者存在,不存在返回404类错误
type AuthorBooksUseCase struct {
	authorService author.Service
	bookService   book.Service
}

// NewAuthorBooksUseCase 创建用例
func NewAuthorBooksUseCase(authorService author.Service, bookService book.Service) *AuthorBooksUseCase {
	return &AuthorBooksUseCase{
		authorService: authorService,
		bookService:   bookService,
	}
}

// Execute 执行查询用例
func (uc *AuthorBooksUseCase) Execute(ctx context.Context, authorID uint) ([]BookDTO, error) {
	// 1. 作者必须存在
	if _, err := uc.authorService.GetAuthorByID(ctx, authorID); err != nil {
		return nil, err
	}

	// 2. 查询名下图书
	books, err := uc.bookService.ListBooksByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	items := make([]BookDTO, len(books))
	for i, b := range books {
		items[i] = ToBookDTO(b)
	}

	return items, nil
}
