package book

import "context"

// ListParams 图书列表查询参数
// 设计说明:
// 1. AuthorID/Year为0表示不过滤
// 2. Search在书名、简介与作者姓名上做子串匹配
// 3. Ordering前缀"-"表示降序;不在白名单内的字段由仓储回退为默认排序
type ListParams struct {
	Page     int
	Search   string
	AuthorID uint
	Year     int
	Ordering string
}

// Repository 图书仓储接口
type Repository interface {
	// Create 创建图书,作者不存在时返回ErrAuthorNotFound
	Create(ctx context.Context, b *Book) error

	// FindByID 根据ID查询图书,预载作者与全部书评
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书
	Update(ctx context.Context, b *Book) error

	// Delete 删除图书,关联书评级联删除
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表,预载作者,返回(列表, 总数, 错误)
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// ListByAuthor 查询某作者的全部图书(不分页,按出版日期降序)
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// ReviewStats 数据库侧聚合某图书的书评统计
	ReviewStats(ctx context.Context, id uint) (*ReviewStats, error)
}
