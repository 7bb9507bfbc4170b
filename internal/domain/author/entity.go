package author

import (
	"strings"
	"time"
	"unicode/utf8"
)

// 字段长度限制（与数据库列宽一致）
const (
	NameMaxLen        = 100
	NationalityMaxLen = 50
)

// Author 作者实体(聚合根)
// 设计说明:
// 1. Author是作者聚合的根实体,拥有零或多本图书(一对多)
// 2. 删除作者时级联删除其所有图书(由数据库外键保证)
// 3. BookCount是读侧统计值,投影时由仓储计算,不落库
type Author struct {
	ID          uint
	Name        string // 姓名(nombre)
	Nationality string // 国籍(nacionalidad)
	BookCount   int64  // 名下图书数量(计算字段,非存储)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAuthor 创建新作者(工厂方法)
// 注意:字段校验由领域服务负责,此处只做构造
func NewAuthor(name, nationality string) *Author {
	now := time.Now()
	return &Author{
		Name:        name,
		Nationality: nationality,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate 应用字段更新(领域行为)
// nil表示该字段不修改(支持部分更新)
func (a *Author) ApplyUpdate(name, nationality *string) {
	if name != nil {
		a.Name = *name
	}
	if nationality != nil {
		a.Nationality = *nationality
	}
	a.UpdatedAt = time.Now()
}

// ValidateName 校验作者姓名
// 业务规则:去除首尾空白后不能为空,长度不超过100字符
// 纯函数,无副作用;校验失败时写入必须被整体拒绝
func ValidateName(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(value) > NameMaxLen {
		return ErrNameTooLong
	}
	return nil
}

// ValidateNationality 校验国籍
func ValidateNationality(value string) error {
	if utf8.RuneCountInString(value) > NationalityMaxLen {
		return ErrNationalityTooLong
	}
	return nil
}
