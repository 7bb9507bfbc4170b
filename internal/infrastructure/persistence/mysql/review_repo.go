package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/domain/review"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// reviewOrderFields 书评列表排序白名单(对外字段名 → SQL列)
var reviewOrderFields = map[string]string{
	"fecha":        "reviews.reviewed_at",
	"calificacion": "reviews.score",
	"rating":       "reviews.rating",
}

// reviewRepository 书评仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/review/repository.go定义的接口
// 2. 搜索跨图书书名时JOIN books表
// 3. 插入时图书不存在由外键错误(1452)映射为业务错误
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建书评仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建书评
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	// 1. 领域实体 → GORM模型
	model := &ReviewModel{
		BookID:     rv.BookID,
		Text:       rv.Text,
		Score:      rv.Score,
		Rating:     rv.Rating,
		ReviewedAt: rv.ReviewedAt,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 外键约束失败说明引用的图书不存在
		if isForeignKeyError(err) {
			return book.ErrBookNotFound
		}
		return apperrors.Wrap(err, "创建书评失败")
	}

	// 3. 回填自增ID
	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找书评
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询书评失败")
	}

	return toReviewEntity(&model), nil
}

// Update 更新书评
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		ID:         rv.ID,
		BookID:     rv.BookID,
		Text:       rv.Text,
		Score:      rv.Score,
		Rating:     rv.Rating,
		ReviewedAt: rv.ReviewedAt,
		CreatedAt:  rv.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isForeignKeyError(err) {
			return book.ErrBookNotFound
		}
		return apperrors.Wrap(err, "更新书评失败")
	}

	rv.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除书评
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除书评失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// List 分页查询书评列表
// 过滤顺序:等值过滤 → 范围过滤 → 搜索 → 排序 → 分页
func (r *reviewRepository) List(ctx context.Context, params review.ListParams) ([]*review.Review, int64, error) {
	var models []ReviewModel
	var total int64

	query := getDB(ctx, r.db).Model(&ReviewModel{})

	// 图书精确过滤
	if params.BookID != nil {
		query = query.Where("reviews.book_id = ?", *params.BookID)
	}

	// 打分精确过滤
	if params.Score != nil {
		query = query.Where("reviews.score = ?", *params.Score)
	}

	// rating闭区间范围过滤(非法取值在接口层已被静默忽略)
	if params.RatingMin != nil {
		query = query.Where("reviews.rating >= ?", *params.RatingMin)
	}
	if params.RatingMax != nil {
		query = query.Where("reviews.rating <= ?", *params.RatingMax)
	}

	// 关键词搜索(内容、所评图书书名任一命中即可)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.
			Joins("JOIN books ON books.id = reviews.book_id").
			Where("reviews.text LIKE ? OR books.title LIKE ?", keyword, keyword)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评总数失败")
	}

	// 页码越界检查
	if err := checkPageBounds(params.Page, total); err != nil {
		return nil, 0, err
	}

	// 排序(白名单外的字段回退默认:点评时间降序)
	query = query.Order(orderClause(params.Ordering, reviewOrderFields, "reviews.reviewed_at DESC"))

	// 分页查询
	if err := paginate(query, params.Page).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询书评列表失败")
	}

	// 转换为领域实体
	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}

	return reviews, total, nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:         model.ID,
		BookID:     model.BookID,
		Text:       model.Text,
		Score:      model.Score,
		Rating:     model.Rating,
		ReviewedAt: model.ReviewedAt,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
