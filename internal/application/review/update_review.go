package review

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/review"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// UpdateReviewUseCase 更新书评用例
// 点评时间(fecha)创建后不可变,不在更新字段之列
type UpdateReviewUseCase struct {
	reviewService review.Service
	cache         *redis.BookCache
}

// NewUpdateReviewUseCase 创建更新用例
func NewUpdateReviewUseCase(reviewService review.Service, cache *redis.BookCache) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewService: reviewService,
		cache:         cache,
	}
}

// UpdateReviewRequest 更新请求DTO
// nil字段表示不修改(部分更新)
type UpdateReviewRequest struct {
	ID           uint
	Texto        *string
	Calificacion *int
	Rating       *float64
}

// Execute 执行更新用例
func (uc *UpdateReviewUseCase) Execute(ctx context.Context, req UpdateReviewRequest) (*ReviewDTO, error) {
	r, err := uc.reviewService.UpdateReview(ctx, req.ID, req.Texto, req.Calificacion, req.Rating)
	if err != nil {
		return nil, err
	}

	// rating变化影响图书的聚合统计
	uc.cache.InvalidateBook(ctx, r.BookID)

	dto := ToReviewDTO(r)
	return &dto, nil
}
