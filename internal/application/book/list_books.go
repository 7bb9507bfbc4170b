package book

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 支持按作者、出版年份的精确过滤
// 2. 搜索覆盖书名、简介与作者姓名
// 3. 列表投影同样携带最新书评与平均rating
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// ListBooksRequest 列表查询请求DTO
// Autor/Year为0表示不过滤
type ListBooksRequest struct {
	Page     int
	Search   string
	Autor    uint
	Year     int
	Ordering string
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Items []BookDTO
	Total int64
	Page  int
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 页码默认值
	if req.Page < 1 {
		req.Page = 1
	}

	// 2. 构建查询参数
	params := book.ListParams{
		Page:     req.Page,
		Search:   req.Search,
		AuthorID: req.Autor,
		Year:     req.Year,
		Ordering: req.Ordering,
	}

	// 3. 查询并转换
	books, total, err := uc.bookService.ListBooks(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]BookDTO, len(books))
	for i, b := range books {
		items[i] = ToBookDTO(b)
	}

	return &ListBooksResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
	}, nil
}
