package author

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
)

// UpdateAuthorUseCase 更新作者用例
// 全量更新(PUT)与部分更新(PATCH)共用:接口层全量时填满所有字段
type UpdateAuthorUseCase struct {
	authorService author.Service
}

// NewUpdateAuthorUseCase 创建更新用例
func NewUpdateAuthorUseCase(authorService author.Service) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{authorService: authorService}
}

// UpdateAuthorRequest 更新请求DTO
// nil字段表示不修改
type UpdateAuthorRequest struct {
	ID           uint
	Nombre       *string
	Nacionalidad *string
}

// Execute 执行更新用例
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (*AuthorDTO, error) {
	a, err := uc.authorService.UpdateAuthor(ctx, req.ID, req.Nombre, req.Nacionalidad)
	if err != nil {
		return nil, err
	}

	dto := ToAuthorDTO(a)
	return &dto, nil
}
