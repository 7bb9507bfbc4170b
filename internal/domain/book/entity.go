package book

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xiebiao/biblioteca/internal/domain/author"
	"github.com/xiebiao/biblioteca/internal/domain/review"
)

// 字段长度约束
const (
	TitleMaxLen   = 200 // 书名最大长度
	SummaryMinLen = 50  // 简介最小长度(去除首尾空白后按字符数计)
)

// RecentReviewLimit 详情投影中携带的最新书评条数上限
const RecentReviewLimit = 5

// Book 图书实体
// 设计说明:
// 1. Author与Reviews为关联预载字段,仅在需要投影时填充
// 2. 出版日期只保留日期部分,年份通过Year()派生,不单独存储
type Book struct {
	ID              uint
	Title           string
	AuthorID        uint
	PublicationDate time.Time
	Summary         string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// 关联(按需预载)
	Author  *author.Author
	Reviews []*review.Review
}

// NewBook 创建图书实体
func NewBook(title string, authorID uint, publicationDate time.Time, summary string) *Book {
	return &Book{
		Title:           title,
		AuthorID:        authorID,
		PublicationDate: publicationDate,
		Summary:         summary,
	}
}

// Year 出版年份(从出版日期派生)
func (b *Book) Year() int {
	return b.PublicationDate.Year()
}

// ApplyUpdate 应用部分更新,nil字段表示不修改
func (b *Book) ApplyUpdate(title *string, authorID *uint, publicationDate *time.Time, summary *string) {
	if title != nil {
		b.Title = *title
	}
	if authorID != nil {
		b.AuthorID = *authorID
	}
	if publicationDate != nil {
		b.PublicationDate = *publicationDate
	}
	if summary != nil {
		b.Summary = *summary
	}
}

// ValidateTitle 校验书名:非空白且不超长
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateSummary 校验简介:去除首尾空白后至少50个字符
func ValidateSummary(summary string) error {
	if utf8.RuneCountInString(strings.TrimSpace(summary)) < SummaryMinLen {
		return ErrSummaryTooShort
	}
	return nil
}
