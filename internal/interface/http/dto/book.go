package dto

// CreateBookRequest 创建图书请求
// fecha_publicacion格式:YYYY-MM-DD
type CreateBookRequest struct {
	Titulo           string `json:"titulo" binding:"required" example:"Cien años de soledad"`
	Autor            uint   `json:"autor" binding:"required" example:"1"`
	FechaPublicacion string `json:"fecha_publicacion" binding:"required" example:"1967-06-05"`
	Resumen          string `json:"resumen" binding:"required"`
}

// UpdateBookRequest 全量更新图书请求(PUT)
type UpdateBookRequest struct {
	Titulo           string `json:"titulo" binding:"required"`
	Autor            uint   `json:"autor" binding:"required"`
	FechaPublicacion string `json:"fecha_publicacion" binding:"required"`
	Resumen          string `json:"resumen" binding:"required"`
}

// PatchBookRequest 部分更新图书请求(PATCH)
// 缺失的字段不修改
type PatchBookRequest struct {
	Titulo           *string `json:"titulo"`
	Autor            *uint   `json:"autor"`
	FechaPublicacion *string `json:"fecha_publicacion"`
	Resumen          *string `json:"resumen"`
}
