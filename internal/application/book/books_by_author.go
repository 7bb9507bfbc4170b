package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/book"
)

// BooksByAuthorUseCase 按作者查询图书用例(集合级端点)
// 作者不存在时返回空列表,与按作者ID过滤的语义一致
type BooksByAuthorUseCase struct {
	bookService book.Service
}

// NewBooksByAuthorUseCase 创建用例
func NewBooksByAuthorUseCase(bookService book.Service) *BooksByAuthorUseCase {
	return &BooksByAuthorUseCase{bookService: bookService}
}

// Execute 执行查询用例
func (uc *BooksByAuthorUseCase) Execute(ctx context.Context, authorID uint) ([]BookDTO, error) {
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
