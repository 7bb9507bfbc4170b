package author

import (
	"context"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// Service 作者领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验,校验失败时写入被整体拒绝(不会部分持久化)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则:姓名去空白后非空且≤100字符,国籍≤50字符
	CreateAuthor(ctx context.Context, name, nationality string) (*Author, error)

	// GetAuthorByID 根据ID获取作者详情
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthor 更新作者信息
	// nil字段表示不修改(部分更新);全量更新时两个字段都非nil
	UpdateAuthor(ctx context.Context, id uint, name, nationality *string) (*Author, error)

	// DeleteAuthor 删除作者
	// 级联删除名下所有图书及其书评,级联删除永远成功,不视为冲突
	DeleteAuthor(ctx context.Context, id uint) error

	// ListAuthors 分页查询作者列表
	ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, name, nationality string) (*Author, error) {
	// 1. 字段校验(全部字段都校验,聚合为字段级错误明细)
	if err := validateFields(&name, &nationality); err != nil {
		return nil, err
	}

	// 2. 创建实体并持久化
	a := NewAuthor(name, nationality)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// GetAuthorByID 根据ID获取作者
func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthor 更新作者信息
func (s *service) UpdateAuthor(ctx context.Context, id uint, name, nationality *string) (*Author, error) {
	// 1. 先校验,校验不通过不查库也不写库
	if err := validateFields(name, nationality); err != nil {
		return nil, err
	}

	// 2. 查询作者
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 应用更新并持久化
	a.ApplyUpdate(name, nationality)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// DeleteAuthor 删除作者
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListAuthors 分页查询作者列表
func (s *service) ListAuthors(ctx context.Context, params ListParams) ([]*Author, int64, error) {
	return s.repo.List(ctx, params)
}

// validateFields 聚合字段校验
// nil字段跳过(部分更新时未提供的字段不校验)
// 返回的错误携带按对外字段名组织的明细(nombre、nacionalidad)
func validateFields(name, nationality *string) error {
	details := make(map[string]string)

	if name != nil {
		if err := ValidateName(*name); err != nil {
			details["nombre"] = apperrors.GetAppError(err).Message
		}
	}
	if nationality != nil {
		if err := ValidateNationality(*nationality); err != nil {
			details["nacionalidad"] = apperrors.GetAppError(err).Message
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidation(details)
	}
	return nil
}
