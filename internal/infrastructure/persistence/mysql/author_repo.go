package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// bookCountSubquery 名下图书数量的子查询
// 随列表与详情查询一并执行,避免N+1
const bookCountSubquery = "(SELECT COUNT(*) FROM books WHERE books.author_id = authors.id) AS book_count"

// authorOrderFields 作者列表排序白名单(对外字段名 → SQL列)
var authorOrderFields = map[string]string{
	"nombre":       "authors.name",
	"nacionalidad": "authors.nationality",
}

// authorRepository 作者仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/author/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 名下图书数量用子查询计算,不在authors表冗余存储
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	// 1. 领域实体 → GORM模型
	model := &AuthorModel{
		Name:        a.Name,
		Nationality: a.Nationality,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	// 3. 回填自增ID
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者(带图书数量)
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).
		Select("authors.*, " + bookCountSubquery).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// Update 更新作者信息
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新作者失败")
	}

	a.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除作者
// 名下图书与图书的书评由数据库外键级联删除
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

// List 分页查询作者列表
// 过滤顺序:等值/子串过滤 → 排序 → 分页
func (r *authorRepository) List(ctx context.Context, params author.ListParams) ([]*author.Author, int64, error) {
	var models []AuthorModel
	var total int64

	query := getDB(ctx, r.db).Model(&AuthorModel{})

	// 国籍子串过滤
	if params.Nationality != "" {
		query = query.Where("authors.nationality LIKE ?", "%"+params.Nationality+"%")
	}

	// 关键词搜索(姓名、国籍任一命中即可)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.Where("authors.name LIKE ? OR authors.nationality LIKE ?", keyword, keyword)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者总数失败")
	}

	// 页码越界检查
	if err := checkPageBounds(params.Page, total); err != nil {
		return nil, 0, err
	}

	// 排序(白名单外的字段回退默认:姓名升序)
	query = query.Order(orderClause(params.Ordering, authorOrderFields, "authors.name ASC"))

	// 分页查询(带图书数量子查询)
	err := paginate(query, params.Page).
		Select("authors.*, " + bookCountSubquery).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询作者列表失败")
	}

	// 转换为领域实体
	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}

	return authors, total, nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:          model.ID,
		Name:        model.Name,
		Nationality: model.Nationality,
		BookCount:   model.BookCount,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
