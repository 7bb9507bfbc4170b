package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
	"github.com/xiebiao/biblioteca/pkg/response"
)

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isForeignKeyError 判断是否为MySQL外键约束错误
// MySQL错误码:
// - 1452: Cannot add or update a child row: a foreign key constraint fails
// 插入时引用的父行不存在会触发此错误,由各仓储映射为对应的NotFound业务错误
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(err.Error(), "a foreign key constraint fails")
}

// checkPageBounds 校验页码是否越界
// 规则:
// 1. 空集合的第1页合法(返回空结果,不报错)
// 2. 除此之外,页码起点超过总数即越界
func checkPageBounds(page int, total int64) error {
	if page <= 1 {
		return nil
	}
	if int64(page-1)*response.PageSize >= total {
		return apperrors.ErrPageOutOfRange
	}
	return nil
}

// orderClause 根据排序白名单生成ORDER BY子句
// 规则:
// 1. 前缀"-"表示降序
// 2. 字段不在白名单内时回退到默认排序(不报错)
// allowed将对外字段名映射到SQL列或表达式
func orderClause(ordering string, allowed map[string]string, defaultClause string) string {
	if ordering == "" {
		return defaultClause
	}

	field := ordering
	desc := false
	if strings.HasPrefix(ordering, "-") {
		field = ordering[1:]
		desc = true
	}

	column, ok := allowed[field]
	if !ok {
		return defaultClause
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}

// paginate 应用固定页大小的分页
func paginate(db *gorm.DB, page int) *gorm.DB {
	offset := (page - 1) * response.PageSize
	return db.Limit(response.PageSize).Offset(offset)
}
