package author

import (
	"github.com/xiebiao/biblioteca/internal/domain/author"
)

// AuthorDTO 作者对外表示
// cantidad_libros是读侧计算字段(名下图书数量),不落库
type AuthorDTO struct {
	ID             uint   `json:"id"`
	Nombre         string `json:"nombre"`
	Nacionalidad   string `json:"nacionalidad"`
	CantidadLibros int64  `json:"cantidad_libros"`
}

// ToAuthorDTO 领域实体 → DTO
func ToAuthorDTO(a *author.Author) AuthorDTO {
	return AuthorDTO{
		ID:             a.ID,
		Nombre:         a.Name,
		Nacionalidad:   a.Nationality,
		CantidadLibros: a.BookCount,
	}
}
