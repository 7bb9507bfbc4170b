package mysql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

func TestCheckPageBounds(t *testing.T) {
	t.Run("空集合的第1页合法", func(t *testing.T) {
		assert.NoError(t, checkPageBounds(1, 0))
	})

	t.Run("末页合法", func(t *testing.T) {
		// 25条记录,每页10条,第3页有5条
		assert.NoError(t, checkPageBounds(3, 25))
	})

	t.Run("刚好整除时末页之后越界", func(t *testing.T) {
		assert.NoError(t, checkPageBounds(2, 20))
		err := checkPageBounds(3, 20)
		assert.ErrorIs(t, err, apperrors.ErrPageOutOfRange)
	})

	t.Run("超出总数越界", func(t *testing.T) {
		err := checkPageBounds(4, 25)
		assert.ErrorIs(t, err, apperrors.ErrPageOutOfRange)
	})

	t.Run("空集合的第2页越界", func(t *testing.T) {
		err := checkPageBounds(2, 0)
		assert.ErrorIs(t, err, apperrors.ErrPageOutOfRange)
	})
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"titulo":           "books.title",
		"publication_year": "YEAR(books.publication_date)",
	}
	defaultClause := "books.publication_date DESC"

	t.Run("空排序回退默认", func(t *testing.T) {
		assert.Equal(t, defaultClause, orderClause("", allowed, defaultClause))
	})

	t.Run("白名单字段升序", func(t *testing.T) {
		assert.Equal(t, "books.title ASC", orderClause("titulo", allowed, defaultClause))
	})

	t.Run("前缀减号为降序", func(t *testing.T) {
		assert.Equal(t, "books.title DESC", orderClause("-titulo", allowed, defaultClause))
	})

	t.Run("映射到SQL表达式", func(t *testing.T) {
		assert.Equal(t, "YEAR(books.publication_date) DESC", orderClause("-publication_year", allowed, defaultClause))
	})

	t.Run("白名单外的字段回退默认", func(t *testing.T) {
		// 未知字段不报错,避免把用户输入拼进SQL
		assert.Equal(t, defaultClause, orderClause("id; DROP TABLE books", allowed, defaultClause))
		assert.Equal(t, defaultClause, orderClause("-desconocido", allowed, defaultClause))
	})
}

func TestIsForeignKeyError(t *testing.T) {
	assert.False(t, isForeignKeyError(nil))
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyError(errors.New("Error 1452: Cannot add or update a child row: a foreign key constraint fails")))
	assert.False(t, isForeignKeyError(errors.New("Error 1062: Duplicate entry")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, isDuplicateError(nil))
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(errors.New("Error 1062: Duplicate entry 'x' for key 'authors.name'")))
	assert.False(t, isDuplicateError(errors.New("record not found")))
}
