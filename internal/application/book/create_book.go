package book

import (
	"context"
	"time"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 字段校验由领域服务负责,失败按字段聚合返回
// 2. 引用的作者不存在由仓储映射为404类业务错误
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 创建请求DTO
type CreateBookRequest struct {
	Titulo           string    // 书名(必填,不超过200字符)
	Autor            uint      // 作者ID(必填)
	FechaPublicacion time.Time // 出版日期
	Resumen          string    // 简介(至少50字符)
}

// Execute 执行创建用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookDTO, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Titulo, req.Autor, req.FechaPublicacion, req.Resumen)
	if err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeInvalidField {
			metrics.IncCounterVec(metrics.ValidationFailuresTotal, map[string]string{"resource": "book"})
		}
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)

	// 回查一次拿到预载作者的完整投影(author_name等冗余字段)
	full, err := uc.bookService.GetBookByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	dto := ToBookDTO(full)
	return &dto, nil
}
