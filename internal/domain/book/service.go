package book

import (
	"context"
	"time"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 校验聚合失败时整个写入被拒绝,明细按字段聚合返回
// 2. 统计聚合走仓储的数据库侧实现,投影所需的预载数据走FindByID
type Service interface {
	// CreateBook 创建图书
	CreateBook(ctx context.Context, title string, authorID uint, publicationDate time.Time, summary string) (*Book, error)

	// GetBookByID 根据ID获取图书(预载作者与书评)
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书,nil字段表示不修改
	UpdateBook(ctx context.Context, id uint, title *string, authorID *uint, publicationDate *time.Time, summary *string) (*Book, error)

	// DeleteBook 删除图书,关联书评级联删除
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListBooksByAuthor 查询某作者的全部图书
	ListBooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// GetReviewStats 获取某图书的书评聚合统计
	GetReviewStats(ctx context.Context, id uint) (*ReviewStats, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title string, authorID uint, publicationDate time.Time, summary string) (*Book, error) {
	// 1. 字段校验
	if err := validateFields(&title, &summary); err != nil {
		return nil, err
	}

	// 2. 创建实体并持久化(作者不存在由仓储映射为ErrAuthorNotFound)
	b := NewBook(title, authorID, publicationDate, summary)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, title *string, authorID *uint, publicationDate *time.Time, summary *string) (*Book, error) {
	// 1. 先校验再查库
	if err := validateFields(title, summary); err != nil {
		return nil, err
	}

	// 2. 查询图书
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 应用更新并持久化
	b.ApplyUpdate(title, authorID, publicationDate, summary)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// ListBooksByAuthor 查询某作者的全部图书
func (s *service) ListBooksByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

// GetReviewStats 获取某图书的书评聚合统计
// 先确认图书存在,再做数据库侧聚合
func (s *service) GetReviewStats(ctx context.Context, id uint) (*ReviewStats, error) {
	return s.repo.ReviewStats(ctx, id)
}

// validateFields 聚合字段校验
// nil字段跳过;明细key使用对外字段名(titulo、resumen)
func validateFields(title, summary *string) error {
	details := make(map[string]string)

	if title != nil {
		if err := ValidateTitle(*title); err != nil {
			details["titulo"] = apperrors.GetAppError(err).Message
		}
	}
	if summary != nil {
		if err := ValidateSummary(*summary); err != nil {
			details["resumen"] = apperrors.GetAppError(err).Message
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidation(details)
	}
	return nil
}
