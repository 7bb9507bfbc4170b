package review

import (
	"context"
)

// ListParams 列表查询参数
// 设计说明:
// 1. 指针字段nil表示未提供该过滤条件(不产生查询子句)
// 2. RatingMin/RatingMax是闭区间边界,各自独立可选
//    注意:HTTP层对无法解析的数值静默忽略(该过滤不生效),到达这里的值一定合法
type ListParams struct {
	Page      int      // 页码(从1开始)
	Search    string   // 模糊搜索(书评正文、图书标题)
	BookID    *uint    // 按图书精确过滤(libro)
	Score     *int     // 按整数评分精确过滤(calificacion)
	RatingMin *float64 // 浮点评分下限(含)
	RatingMax *float64 // 浮点评分上限(含)
	Ordering  string   // 排序字段(fecha、calificacion、rating),前缀"-"表示降序
}

// Repository 书评仓储接口
type Repository interface {
	// Create 创建书评
	// 图书不存在时返回ErrBookNotFound(由外键约束兜底)
	Create(ctx context.Context, r *Review) error

	// FindByID 根据ID查找书评
	FindByID(ctx context.Context, id uint) (*Review, error)

	// Update 更新书评
	Update(ctx context.Context, r *Review) error

	// Delete 删除书评
	Delete(ctx context.Context, id uint) error

	// List 分页查询书评列表
	List(ctx context.Context, params ListParams) ([]*Review, int64, error)
}
