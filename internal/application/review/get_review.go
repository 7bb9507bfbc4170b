package review

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/review"
)

// GetReviewUseCase 书评详情用例
type GetReviewUseCase struct {
	reviewService review.Service
}

// NewGetReviewUseCase 创建用例
func NewGetReviewUseCase(reviewService review.Service) *GetReviewUseCase {
	return &GetReviewUseCase{reviewService: reviewService}
}

// Execute 执行查询用例
func (uc *GetReviewUseCase) Execute(ctx context.Context, id uint) (*ReviewDTO, error) {
	r, err := uc.reviewService.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := ToReviewDTO(r)
	return &dto, nil
}
