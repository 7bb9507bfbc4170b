package author

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
)

// ListAuthorsUseCase 作者列表查询用例
// 设计说明:
// 1. 支持国籍子串过滤、关键词搜索(姓名、国籍)与白名单排序
// 2. 页大小固定,页码从1开始
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建列表查询用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// ListAuthorsRequest 列表查询请求DTO
type ListAuthorsRequest struct {
	Page         int
	Search       string
	Nacionalidad string
	Ordering     string
}

// ListAuthorsResponse 列表查询响应DTO
type ListAuthorsResponse struct {
	Items []AuthorDTO
	Total int64
	Page  int
}

// Execute 执行列表查询用例
func (uc *ListAuthorsUseCase) Execute(ctx context.Context, req ListAuthorsRequest) (*ListAuthorsResponse, error) {
	// 1. 页码默认值
	if req.Page < 1 {
		req.Page = 1
	}

	// 2. 构建查询参数
	params := author.ListParams{
		Page:        req.Page,
		Search:      req.Search,
		Nationality: req.Nacionalidad,
		Ordering:    req.Ordering,
	}

	// 3. 查询并转换
	authors, total, err := uc.authorService.ListAuthors(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]AuthorDTO, len(authors))
	for i, a := range authors {
		items[i] = ToAuthorDTO(a)
	}

	return &ListAuthorsResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
	}, nil
}
