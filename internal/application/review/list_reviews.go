package review

import (
	"context"

	"github.com/xiebiao/biblioteca/internal/domain/review"
)

// ListReviewsUseCase 书评列表查询用例
// 设计说明:
// 1. 支持按图书、打分的精确过滤与rating闭区间过滤
// 2. 搜索覆盖书评内容与所评图书书名
// 3. 页大小固定,页码从1开始
type ListReviewsUseCase struct {
	reviewService review.Service
}

// NewListReviewsUseCase 创建列表查询用例
func NewListReviewsUseCase(reviewService review.Service) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewService: reviewService}
}

// ListReviewsRequest 列表查询请求DTO
// 指针字段为nil表示不过滤
type ListReviewsRequest struct {
	Page         int
	Search       string
	Libro        *uint
	Calificacion *int
	RatingMin    *float64
	RatingMax    *float64
	Ordering     string
}

// ListReviewsResponse 列表查询响应DTO
type ListReviewsResponse struct {
	Items []ReviewDTO
	Total int64
	Page  int
}

// Execute 执行列表查询用例
func (uc *ListReviewsUseCase) Execute(ctx context.Context, req ListReviewsRequest) (*ListReviewsResponse, error) {
	// 1. 页码默认值
	if req.Page < 1 {
		req.Page = 1
	}

	// 2. 构建查询参数
	params := review.ListParams{
		Page:      req.Page,
		Search:    req.Search,
		BookID:    req.Libro,
		Score:     req.Calificacion,
		RatingMin: req.RatingMin,
		RatingMax: req.RatingMax,
		Ordering:  req.Ordering,
	}

	// 3. 查询并转换
	reviews, total, err := uc.reviewService.ListReviews(ctx, params)
	if err != nil {
		return nil, err
	}

	items := make([]ReviewDTO, len(reviews))
	for i, r := range reviews {
		items[i] = ToReviewDTO(r)
	}

	return &ListReviewsResponse{
		Items: items,
		Total: total,
		Page:  req.Page,
	}, nil
}
