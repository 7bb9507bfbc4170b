package review

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/review"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
)

// DeleteReviewUseCase 删除书评用例
type DeleteReviewUseCase struct {
	reviewService review.Service
	cache         *redis.BookCache
}

// NewDeleteReviewUseCase 创建删除用例
func NewDeleteReviewUseCase(reviewService review.Service, cache *redis.BookCache) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewService: reviewService,
		cache:         cache,
	}
}

// Execute 执行删除用例
// 先取书评拿到所评图书ID,删除成功后失效该图书缓存
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, id uint) error {
	r, err := uc.reviewService.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.reviewService.DeleteReview(ctx, id); err != nil {
		return err
	}

	uc.cache.InvalidateBook(ctx, r.BookID)
	return nil
}
