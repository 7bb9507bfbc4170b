package dto

// CreateAuthorRequest 创建作者请求
type CreateAuthorRequest struct {
	Nombre       string `json:"nombre" binding:"required" example:"Gabriel García Márquez"`
	Nacionalidad string `json:"nacionalidad" example:"Colombiana"`
}

// UpdateAuthorRequest 全量更新作者请求(PUT)
type UpdateAuthorRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	Nacionalidad string `json:"nacionalidad"`
}

// PatchAuthorRequest 部分更新作者请求(PATCH)
// 缺失的字段不修改
type PatchAuthorRequest struct {
	Nombre       *string `json:"nombre"`
	Nacionalidad *string `json:"nacionalidad"`
}
