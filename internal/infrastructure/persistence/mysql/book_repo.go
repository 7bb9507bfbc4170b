package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/book"
	"github.com/xiebiao/biblioteca/internal/domain/review"
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// bookOrderFields 图书列表排序白名单(对外字段名 → SQL列/表达式)
// publication_year是派生字段,排序时用YEAR()提取,与原始日期字段区分
var bookOrderFields = map[string]string{
	"titulo":            "books.title",
	"fecha_publicacion": "books.publication_date",
	"publication_year":  "YEAR(books.publication_date)",
}

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 搜索跨作者姓名时JOIN authors表
// 3. 插入时作者不存在由外键错误(1452)映射为业务错误
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		PublicationDate: b.PublicationDate,
		Summary:         b.Summary,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		// 外键约束失败说明引用的作者不存在
		if isForeignKeyError(err) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// preloadAssociations 预载作者(带图书数量)与全部书评(按点评时间降序)
// 书评整体预载后在投影阶段截断,GORM的Preload无法按父行限条
func preloadAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("authors.*, " + bookCountSubquery)
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviewed_at DESC")
		})
}

// FindByID 根据ID查找图书(带关联)
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := preloadAssociations(getDB(ctx, r.db)).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		AuthorID:        b.AuthorID,
		PublicationDate: b.PublicationDate,
		Summary:         b.Summary,
		CreatedAt:       b.CreatedAt,
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isForeignKeyError(err) {
			return author.ErrAuthorNotFound
		}
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书
// 关联书评由数据库外键级联删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
// 过滤顺序:等值过滤 → 搜索 → 排序 → 分页
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	// 作者精确过滤
	if params.AuthorID != 0 {
		query = query.Where("books.author_id = ?", params.AuthorID)
	}

	// 出版年份精确过滤
	if params.Year != 0 {
		query = query.Where("YEAR(books.publication_date) = ?", params.Year)
	}

	// 关键词搜索(书名、简介、作者姓名任一命中即可)
	if params.Search != "" {
		keyword := "%" + params.Search + "%"
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("books.title LIKE ? OR books.summary LIKE ? OR authors.name LIKE ?", keyword, keyword, keyword)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 页码越界检查
	if err := checkPageBounds(params.Page, total); err != nil {
		return nil, 0, err
	}

	// 排序(白名单外的字段回退默认:出版日期降序)
	query = query.Order(orderClause(params.Ordering, bookOrderFields, "books.publication_date DESC"))

	// 分页查询(列表投影同样需要作者与书评)
	err := preloadAssociations(paginate(query, params.Page)).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	// 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// ListByAuthor 查询某作者的全部图书(不分页,按出版日期降序)
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := preloadAssociations(getDB(ctx, r.db)).
		Where("author_id = ?", authorID).
		Order("publication_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, nil
}

// reviewStatsRow 聚合查询的扫描目标
type reviewStatsRow struct {
	Total     int64
	Rated     int64
	AvgRating *float64
}

// ReviewStats 数据库侧聚合某图书的书评统计
// AVG自动跳过NULL rating;COUNT(rating)只计非空行
// 均值与内存路径共用同一舍入函数,保证两条路径结果一致
func (r *bookRepository) ReviewStats(ctx context.Context, id uint) (*book.ReviewStats, error) {
	// 1. 先确认图书存在
	var count int64
	if err := getDB(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	if count == 0 {
		return nil, book.ErrBookNotFound
	}

	// 2. 单条SQL完成三项聚合
	var row reviewStatsRow
	err := getDB(ctx, r.db).Model(&ReviewModel{}).
		Select("COUNT(*) AS total, COUNT(rating) AS rated, AVG(rating) AS avg_rating").
		Where("book_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "聚合书评统计失败")
	}

	stats := &book.ReviewStats{
		TotalReviews: row.Total,
		RatedReviews: row.Rated,
	}
	if row.AvgRating != nil {
		avg := book.Round2(*row.AvgRating)
		stats.AverageRating = &avg
	}

	return stats, nil
}

// toBookEntity GORM模型 → 领域实体(含预载的关联)
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:              model.ID,
		Title:           model.Title,
		AuthorID:        model.AuthorID,
		PublicationDate: model.PublicationDate,
		Summary:         model.Summary,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.Author.ID != 0 {
		b.Author = toAuthorEntity(&model.Author)
	}
	if len(model.Reviews) > 0 {
		b.Reviews = make([]*review.Review, len(model.Reviews))
		for i := range model.Reviews {
			b.Reviews[i] = toReviewEntity(&model.Reviews[i])
		}
	}
	return b
}
