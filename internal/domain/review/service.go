package review

import (
	"context"
	"time"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// Service 书评领域服务接口
// 设计说明:
// 1. 评分校验在任何写入之前完成,失败的写入被整体拒绝
// 2. rating缺省补填规则发生在校验之后(合法的score才能作为rating来源)
type Service interface {
	// CreateReview 创建书评
	// rating为nil时用score转浮点补填;reviewedAt为nil时取系统时间
	CreateReview(ctx context.Context, bookID uint, text string, score int, rating *float64, reviewedAt *time.Time) (*Review, error)

	// GetReviewByID 根据ID获取书评
	GetReviewByID(ctx context.Context, id uint) (*Review, error)

	// UpdateReview 更新书评
	// nil字段表示不修改;fecha创建后不可变,不接受更新
	UpdateReview(ctx context.Context, id uint, text *string, score *int, rating *float64) (*Review, error)

	// DeleteReview 删除书评
	DeleteReview(ctx context.Context, id uint) error

	// ListReviews 分页查询书评列表
	ListReviews(ctx context.Context, params ListParams) ([]*Review, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建书评领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateReview 创建书评
func (s *service) CreateReview(ctx context.Context, bookID uint, text string, score int, rating *float64, reviewedAt *time.Time) (*Review, error) {
	// 1. 评分校验
	if err := validateFields(&score, rating); err != nil {
		return nil, err
	}

	// 2. 创建实体(缺省rating在这里按默认填充规则补齐)
	r := NewReview(bookID, text, score, rating, reviewedAt)

	// 3. 持久化(图书不存在由仓储映射为ErrBookNotFound)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// GetReviewByID 根据ID获取书评
func (s *service) GetReviewByID(ctx context.Context, id uint) (*Review, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateReview 更新书评
func (s *service) UpdateReview(ctx context.Context, id uint, text *string, score *int, rating *float64) (*Review, error) {
	// 1. 先校验再查库
	if err := validateFields(score, rating); err != nil {
		return nil, err
	}

	// 2. 查询书评
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 应用更新并持久化
	r.ApplyUpdate(text, score, rating)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// DeleteReview 删除书评
func (s *service) DeleteReview(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListReviews 分页查询书评列表
func (s *service) ListReviews(ctx context.Context, params ListParams) ([]*Review, int64, error) {
	return s.repo.List(ctx, params)
}

// validateFields 聚合评分校验
// nil字段跳过;明细key使用对外字段名(calificacion、rating)
func validateFields(score *int, rating *float64) error {
	details := make(map[string]string)

	if score != nil {
		if err := ValidateScore(*score); err != nil {
			details["calificacion"] = apperrors.GetAppError(err).Message
		}
	}
	if rating != nil {
		if err := ValidateRating(*rating); err != nil {
			details["rating"] = apperrors.GetAppError(err).Message
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidation(details)
	}
	return nil
}
