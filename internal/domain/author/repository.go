package author

import (
	"context"
)

// ListParams 列表查询参数
// 设计说明:
// 1. 所有过滤条件都是可选的,缺省的参数不产生查询子句
// 2. 过滤(合取)→排序→分页的组合顺序由仓储实现保证
type ListParams struct {
	Page        int    // 页码(从1开始)
	Search      string // 模糊搜索(姓名、国籍,不区分大小写,任一字段包含即命中)
	Nationality string // 国籍包含过滤(不区分大小写)
	Ordering    string // 排序字段(nombre、nacionalidad),前缀"-"表示降序
}

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, a *Author) error

	// FindByID 根据ID查找作者(含图书数量统计)
	FindByID(ctx context.Context, id uint) (*Author, error)

	// Update 更新作者信息
	Update(ctx context.Context, a *Author) error

	// Delete 删除作者(级联删除其图书及图书的书评)
	Delete(ctx context.Context, id uint) error

	// List 分页查询作者列表
	// 返回当前页数据和过滤后的总记录数
	List(ctx context.Context, params ListParams) ([]*Author, int64, error)
}
