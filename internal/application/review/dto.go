package review

import (
	"time"

	"github.com/xiebiao/biblioteca/internal/domain/review"
)

// ReviewDTO 书评对外表示
// libro是所评图书的ID;rating可空;fecha为点评时间(RFC3339)
type ReviewDTO struct {
	ID           uint     `json:"id"`
	Libro        uint     `json:"libro"`
	Texto        string   `json:"texto"`
	Calificacion int      `json:"calificacion"`
	Rating       *float64 `json:"rating"`
	Fecha        string   `json:"fecha"`
}

// ToReviewDTO 领域实体 → DTO
func ToReviewDTO(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID,
		Libro:        r.BookID,
		Texto:        r.Text,
		Calificacion: r.Score,
		Rating:       r.Rating,
		Fecha:        r.ReviewedAt.Format(time.RFC3339),
	}
}
