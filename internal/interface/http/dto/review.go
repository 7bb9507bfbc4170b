package dto

// CreateReviewRequest 创建书评请求
// rating缺省时按calificacion补填;fecha(RFC3339)缺省时取系统时间
type CreateReviewRequest struct {
	Libro        uint     `json:"libro" binding:"required" example:"1"`
	Texto        string   `json:"texto" binding:"required"`
	Calificacion int      `json:"calificacion" binding:"required" example:"5"`
	Rating       *float64 `json:"rating"`
	Fecha        *string  `json:"fecha"`
}

// UpdateReviewRequest 全量更新书评请求(PUT)
// fecha创建后不可变,不接受更新
type UpdateReviewRequest struct {
	Texto        string   `json:"texto" binding:"required"`
	Calificacion int      `json:"calificacion" binding:"required"`
	Rating       *float64 `json:"rating"`
}

// PatchReviewRequest 部分更新书评请求(PATCH)
// 缺失的字段不修改
type PatchReviewRequest struct {
	Texto        *string  `json:"texto"`
	Calificacion *int     `json:"calificacion"`
	Rating       *float64 `json:"rating"`
}
