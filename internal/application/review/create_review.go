package review

import (
	"context"
	"time"

	"github.com/xiebiao/biblioteca/internal/domain/review"
	"github.com/xiebiao/biblioteca/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/metrics"
)

// CreateReviewUseCase 创建书评用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 书评写入后所评图书的缓存(详情、统计)必须失效
type CreateReviewUseCase struct {
	reviewService review.Service
	cache         *redis.BookCache
}

// NewCreateReviewUseCase 创建用例
func NewCreateReviewUseCase(reviewService review.Service, cache *redis.BookCache) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewService: reviewService,
		cache:         cache,
	}
}

// CreateReviewRequest 创建请求DTO
// Rating为nil时按打分补填;Fecha为nil时取系统时间
type CreateReviewRequest struct {
	Libro        uint       // 所评图书ID
	Texto        string     // 书评内容
	Calificacion int        // 打分(1到5)
	Rating       *float64   // 精细评分(可空)
	Fecha        *time.Time // 点评时间(可空)
}

// Execute 执行创建用例
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*ReviewDTO, error) {
	r, err := uc.reviewService.CreateReview(ctx, req.Libro, req.Texto, req.Calificacion, req.Rating, req.Fecha)
	if err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeInvalidField {
			metrics.IncCounterVec(metrics.ValidationFailuresTotal, map[string]string{"resource": "review"})
		}
		return nil, err
	}

	// 图书的聚合统计与详情投影已失真,整体失效
	uc.cache.InvalidateBook(ctx, r.BookID)
	metrics.IncCounter(metrics.ReviewsCreatedTotal)

	dto := ToReviewDTO(r)
	return &dto, nil
}
