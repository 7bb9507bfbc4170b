package author

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/metrics"
)

// CreateAuthorUseCase 创建作者用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 字段校验由领域服务负责,校验失败按字段聚合返回
type CreateAuthorUseCase struct {
	authorService author.Service
}

// NewCreateAuthorUseCase 创建用例
func NewCreateAuthorUseCase(authorService author.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{authorService: authorService}
}

// CreateAuthorRequest 创建请求DTO
type CreateAuthorRequest struct {
	Nombre       string // 姓名(必填)
	Nacionalidad string // 国籍(可空)
}

// Execute 执行创建用例
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorDTO, error) {
	a, err := uc.authorService.CreateAuthor(ctx, req.Nombre, req.Nacionalidad)
	if err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeInvalidField {
			metrics.IncCounterVec(metrics.ValidationFailuresTotal, map[string]string{"resource": "author"})
		}
		return nil, err
	}

	metrics.IncCounter(metrics.AuthorsCreatedTotal)

	dto := ToAuthorDTO(a)
	return &dto, nil
}
