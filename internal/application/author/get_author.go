package author

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
)

// GetAuthorUseCase 作者详情用例
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// Execute 执行查询用例
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorDTO, error) {
	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := ToAuthorDTO(a)
	return &dto, nil
}
