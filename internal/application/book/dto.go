package book

import (
	"github.com/xiebiao/biblioteca/internal/domain/book"

	authorapp "github.com/xiebiao/biblioteca/internal/application/author"
	reviewapp "github.com/xiebiao/biblioteca/internal/application/review"
)

// BookDTO 图书紧凑表示(列表投影)
// 设计说明:
// 1. autor是作者ID;author_name、year是冗余的便捷字段
// 2. recent_reviews是按点评时间降序的最新5条书评
// 3. rating_promedio为nil表示没有任何带rating的书评
type BookDTO struct {
	ID               uint                  `json:"id"`
	Titulo           string                `json:"titulo"`
	Autor            uint                  `json:"autor"`
	AuthorName       string                `json:"author_name"`
	FechaPublicacion string                `json:"fecha_publicacion"`
	Year             int                   `json:"year"`
	Resumen          string                `json:"resumen"`
	RecentReviews    []reviewapp.ReviewDTO `json:"recent_reviews"`
	RatingPromedio   *float64              `json:"rating_promedio"`
}

// BookDetailDTO 图书详情表示
// 与紧凑表示的唯一差别:autor从作者ID换成完整的作者表示
type BookDetailDTO struct {
	ID               uint                  `json:"id"`
	Titulo           string                `json:"titulo"`
	Autor            authorapp.AuthorDTO   `json:"autor"`
	AuthorName       string                `json:"author_name"`
	FechaPublicacion string                `json:"fecha_publicacion"`
	Year             int                   `json:"year"`
	Resumen          string                `json:"resumen"`
	RecentReviews    []reviewapp.ReviewDTO `json:"recent_reviews"`
	RatingPromedio   *float64              `json:"rating_promedio"`
}

// dateLayout 出版日期的对外格式(只含日期)
const dateLayout = "2006-01-02"

// recentReviewDTOs 最新书评投影:降序截断后逐条转换
func recentReviewDTOs(b *book.Book) []reviewapp.ReviewDTO {
	recent := book.RecentReviews(b.Reviews, book.RecentReviewLimit)
	dtos := make([]reviewapp.ReviewDTO, len(recent))
	for i, r := range recent {
		dtos[i] = reviewapp.ToReviewDTO(r)
	}
	return dtos
}

// authorName 预载作者缺失时兜底为空串
func authorName(b *book.Book) string {
	if b.Author == nil {
		return ""
	}
	return b.Author.Name
}

// ToBookDTO 领域实体 → 紧凑DTO
func ToBookDTO(b *book.Book) BookDTO {
	return BookDTO{
		ID:               b.ID,
		Titulo:           b.Title,
		Autor:            b.AuthorID,
		AuthorName:       authorName(b),
		FechaPublicacion: b.PublicationDate.Format(dateLayout),
		Year:             b.Year(),
		Resumen:          b.Summary,
		RecentReviews:    recentReviewDTOs(b),
		RatingPromedio:   book.AverageRating(b.Reviews),
	}
}

// ToBookDetailDTO 领域实体 → 详情DTO
func ToBookDetailDTO(b *book.Book) BookDetailDTO {
	var autor authorapp.AuthorDTO
	if b.Author != nil {
		autor = authorapp.ToAuthorDTO(b.Author)
	}
	return BookDetailDTO{
		ID:               b.ID,
		Titulo:           b.Title,
		Autor:            autor,
		AuthorName:       authorName(b),
		FechaPublicacion: b.PublicationDate.Format(dateLayout),
		Year:             b.Year(),
		Resumen:          b.Summary,
		RecentReviews:    recentReviewDTOs(b),
		RatingPromedio:   book.AverageRating(b.Reviews),
	}
}
