package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：图书模块集成测试
//
// 测试场景覆盖：
// 1. 图书CRUD与投影（列表返回作者ID，详情返回嵌套作者对象）
// 2. 分页（固定每页10条）、作者/年份过滤、搜索、排序
// 3. 参数验证（标题长度、简介最小长度）
// 4. 评分聚合端点与por_autor端点

// TestBookCreate 测试图书创建与校验
func TestBookCreate(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("novelista"), "Colombiana")

	t.Run("正常创建图书", func(t *testing.T) {
		titulo := GenerateTestName("Cien años")
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"titulo":            titulo,
			"autor":             authorID,
			"fecha_publicacion": "1967-06-05",
			"resumen":           ValidSummary,
		})

		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, 0, resp.Code, "创建失败: %s", resp.Message)

		var book BookData
		UnmarshalData(t, resp, &book)
		assert.NotZero(t, book.ID)
		assert.Equal(t, titulo, book.Titulo)
		assert.Equal(t, authorID, book.Autor, "列表投影的autor是作者ID")
		assert.NotEmpty(t, book.AuthorName, "应冗余返回作者姓名")
		assert.Equal(t, "1967-06-05", book.FechaPublicacion)
		assert.Equal(t, 1967, book.Year, "year从出版日期推导")
		assert.Nil(t, book.RatingPromedio, "没有书评时平均分为null")
		assert.Empty(t, book.RecentReviews)

		t.Logf("✓ 创建成功，图书ID: %d", book.ID)
	})

	t.Run("过短简介应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"titulo":            GenerateTestName("corto"),
			"autor":             authorID,
			"fecha_publicacion": "1967-06-05",
			"resumen":           "Muy corto",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Details, "resumen", "应返回resumen字段的校验错误")

		t.Logf("✓ 过短简介正确被拒绝: %v", resp.Details)
	})

	t.Run("超长标题应失败", func(t *testing.T) {
		long := make([]rune, 201)
		for i := range long {
			long[i] = 't'
		}
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"titulo":            string(long),
			"autor":             authorID,
			"fecha_publicacion": "1967-06-05",
			"resumen":           ValidSummary,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Details, "titulo")
	})

	t.Run("不存在的作者应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"titulo":            GenerateTestName("huérfano"),
			"autor":             99999999,
			"fecha_publicacion": "1967-06-05",
			"resumen":           ValidSummary,
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40401, resp.Code, "应返回作者不存在错误码")
	})

	t.Run("日期格式错误应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"titulo":            GenerateTestName("fecha"),
			"autor":             authorID,
			"fecha_publicacion": "05/06/1967",
			"resumen":           ValidSummary,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEqual(t, 0, resp.Code)
	})
}

// TestBookDetailProjection 测试详情投影（嵌套作者对象）
func TestBookDetailProjection(t *testing.T) {
	nombre := GenerateTestName("detallista")
	authorID := CreateTestAuthor(t, nombre, "Chilena")
	bookID := CreateTestBook(t, authorID, GenerateTestName("detalle"), "1982-01-01")

	resp, status := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, resp.Code)

	var detail BookDetailData
	UnmarshalData(t, resp, &detail)
	assert.Equal(t, authorID, detail.Autor.ID, "详情投影的autor是嵌套作者对象")
	assert.Equal(t, nombre, detail.Autor.Nombre)
	assert.Equal(t, nombre, detail.AuthorName)
	assert.Equal(t, 1982, detail.Year)
}

// TestBookListPagination 测试固定每页10条的分页语义
func TestBookListPagination(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("paginador"), "Argentina")
	prefix := GenerateTestName("pag")
	for i := 0; i < 25; i++ {
		CreateTestBook(t, authorID, fmt.Sprintf("%s_%02d", prefix, i), "1963-01-01")
	}

	t.Run("第一页有next无previous", func(t *testing.T) {
		resp, _ := GetJSON(t, BaseURL+"/books?search="+prefix)
		page := UnmarshalPage(t, resp)

		assert.Equal(t, int64(25), page.Count, "count是过滤后的总数")
		require.NotNil(t, page.Next)
		assert.Equal(t, 2, *page.Next)
		assert.Nil(t, page.Previous)

		var books []BookData
		UnmarshalResults(t, page, &books)
		assert.Len(t, books, 10, "每页固定10条")
	})

	t.Run("末页不满10条且无next", func(t *testing.T) {
		resp, _ := GetJSON(t, BaseURL+"/books?search="+prefix+"&page=3")
		page := UnmarshalPage(t, resp)

		assert.Equal(t, int64(25), page.Count)
		assert.Nil(t, page.Next, "第3页是末页")
		require.NotNil(t, page.Previous)
		assert.Equal(t, 2, *page.Previous)

		var books []BookData
		UnmarshalResults(t, page, &books)
		assert.Len(t, books, 5)

		t.Logf("✓ 25条记录第3页返回%d条", len(books))
	})

	t.Run("越界页码返回404", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books?search="+prefix+"&page=4")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40404, resp.Code)
	})

	t.Run("非法页码返回404", func(t *testing.T) {
		_, status := GetJSON(t, BaseURL+"/books?search="+prefix+"&page=abc")
		assert.Equal(t, http.StatusNotFound, status)

		_, status = GetJSON(t, BaseURL+"/books?search="+prefix+"&page=0")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

// TestBookFilters 测试作者与年份过滤、排序
func TestBookFilters(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("filtrado"), "Peruana")
	prefix := GenerateTestName("filtro")
	CreateTestBook(t, authorID, prefix+"_viejo", "1963-01-01")
	CreateTestBook(t, authorID, prefix+"_nuevo", "1987-06-28")

	t.Run("按作者ID过滤", func(t *testing.T) {
		// author、author_id、autor三个参数名等价
		for _, param := range []string{"author", "author_id", "autor"} {
			resp, _ := GetJSON(t, fmt.Sprintf("%s/books?%s=%d", BaseURL, param, authorID))
			page := UnmarshalPage(t, resp)
			assert.Equal(t, int64(2), page.Count, "参数%s应过滤出该作者的图书", param)
		}
	})

	t.Run("按出版年份过滤", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/books?autor=%d&year=1963", BaseURL, authorID))
		page := UnmarshalPage(t, resp)
		require.Equal(t, int64(1), page.Count)

		var books []BookData
		UnmarshalResults(t, page, &books)
		assert.Equal(t, 1963, books[0].Year)
	})

	t.Run("非法年份参数被忽略", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/books?autor=%d&year=abc", BaseURL, authorID))
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(2), page.Count, "无法解析的year应被静默忽略")
	})

	t.Run("默认按出版日期降序", func(t *testing.T) {
		resp, _ := GetJSON(t, BaseURL+"/books?search="+prefix)
		page := UnmarshalPage(t, resp)

		var books []BookData
		UnmarshalResults(t, page, &books)
		require.Len(t, books, 2)
		assert.Equal(t, prefix+"_nuevo", books[0].Titulo)
	})

	t.Run("按标题升序排序", func(t *testing.T) {
		resp, _ := GetJSON(t, BaseURL+"/books?search="+prefix+"&ordering=titulo")
		page := UnmarshalPage(t, resp)

		var books []BookData
		UnmarshalResults(t, page, &books)
		require.Len(t, books, 2)
		assert.Equal(t, prefix+"_nuevo", books[0].Titulo, "nuevo按字典序在viejo之前")
	})

	t.Run("按提取的出版年份排序", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books?search="+prefix+"&ordering=-publication_year")
		require.Equal(t, http.StatusOK, status)
		page := UnmarshalPage(t, resp)

		var books []BookData
		UnmarshalResults(t, page, &books)
		require.Len(t, books, 2)
		assert.Equal(t, 1987, books[0].Year)
	})
}

// TestBookUpdateAndDelete 测试图书更新与删除
func TestBookUpdateAndDelete(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("editor"), "Mexicana")

	t.Run("PATCH部分更新标题", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, GenerateTestName("original"), "1985-01-01")

		nuevo := GenerateTestName("revisado")
		resp, status := DoJSON(t, http.MethodPatch, fmt.Sprintf("%s/books/%d", BaseURL, bookID), map[string]interface{}{
			"titulo": nuevo,
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code, "更新失败: %s", resp.Message)

		var book BookData
		UnmarshalData(t, resp, &book)
		assert.Equal(t, nuevo, book.Titulo)
		assert.Equal(t, "1985-01-01", book.FechaPublicacion, "未提供的字段应保持原值")
	})

	t.Run("更换作者后author_name随之更新", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, GenerateTestName("migrante"), "1985-01-01")
		otroNombre := GenerateTestName("sucesor")
		otroID := CreateTestAuthor(t, otroNombre, "Cubana")

		resp, status := DoJSON(t, http.MethodPatch, fmt.Sprintf("%s/books/%d", BaseURL, bookID), map[string]interface{}{
			"autor": otroID,
		})
		require.Equal(t, http.StatusOK, status)

		var book BookData
		UnmarshalData(t, resp, &book)
		assert.Equal(t, otroID, book.Autor)
		assert.Equal(t, otroNombre, book.AuthorName)
	})

	t.Run("删除图书返回204后再查询404", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, GenerateTestName("fugaz"), "1985-01-01")

		_, status := DoJSON(t, http.MethodDelete, fmt.Sprintf("%s/books/%d", BaseURL, bookID), nil)
		assert.Equal(t, http.StatusNoContent, status)

		_, status = GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

// TestBookRatingStats 测试评分聚合端点
func TestBookRatingStats(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("calificado"), "Colombiana")

	t.Run("平均分四舍五入到两位小数", func(t *testing.T) {
		titulo := GenerateTestName("estrella")
		bookID := CreateTestBook(t, authorID, titulo, "1967-06-05")
		CreateTestReview(t, bookID, "Primera reseña con calificación alta.", 5, FloatPtr(4.0))
		CreateTestReview(t, bookID, "Segunda reseña con calificación media.", 4, FloatPtr(3.5))
		CreateTestReview(t, bookID, "Tercera reseña con calificación muy alta.", 5, FloatPtr(4.8))

		resp, status := GetJSON(t, fmt.Sprintf("%s/books/%d/rating_promedio", BaseURL, bookID))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code)

		var stats StatsData
		UnmarshalData(t, resp, &stats)
		assert.Equal(t, bookID, stats.LibroID)
		assert.Equal(t, titulo, stats.Titulo)
		require.NotNil(t, stats.RatingPromedio)
		assert.InDelta(t, 4.1, *stats.RatingPromedio, 0.001, "(4.0+3.5+4.8)/3 = 4.1")
		assert.Equal(t, int64(3), stats.TotalResenas)
		assert.Equal(t, int64(3), stats.ResenasConRating)

		t.Logf("✓ 平均分: %.2f (%d条书评)", *stats.RatingPromedio, stats.TotalResenas)
	})

	t.Run("没有书评时平均分为null", func(t *testing.T) {
		bookID := CreateTestBook(t, authorID, GenerateTestName("mudo"), "1967-06-05")

		resp, _ := GetJSON(t, fmt.Sprintf("%s/books/%d/rating_promedio", BaseURL, bookID))

		var stats StatsData
		UnmarshalData(t, resp, &stats)
		assert.Nil(t, stats.RatingPromedio)
		assert.Equal(t, int64(0), stats.TotalResenas)

		// rating_promedio键必须存在且值为null
		var rawData map[string]json.RawMessage
		UnmarshalData(t, resp, &rawData)
		raw, ok := rawData["rating_promedio"]
		require.True(t, ok, "rating_promedio键应存在")
		assert.Equal(t, "null", string(raw))
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		_, status := GetJSON(t, BaseURL+"/books/99999999/rating_promedio")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("列表投影携带最近书评与平均分", func(t *testing.T) {
		titulo := GenerateTestName("reseñado")
		bookID := CreateTestBook(t, authorID, titulo, "1967-06-05")
		for i := 0; i < 7; i++ {
			CreateTestReview(t, bookID, fmt.Sprintf("Reseña número %d del libro.", i), 4, FloatPtr(4.0))
		}

		resp, _ := GetJSON(t, BaseURL+"/books?search="+titulo)
		page := UnmarshalPage(t, resp)
		require.Equal(t, int64(1), page.Count)

		var books []BookData
		UnmarshalResults(t, page, &books)
		require.Len(t, books, 1)
		assert.Len(t, books[0].RecentReviews, 5, "最多返回5条最近书评")
		require.NotNil(t, books[0].RatingPromedio)
		assert.InDelta(t, 4.0, *books[0].RatingPromedio, 0.001)
	})
}

// TestBooksByAuthor 测试por_autor端点
func TestBooksByAuthor(t *testing.T) {
	t.Run("按作者查询图书", func(t *testing.T) {
		authorID := CreateTestAuthor(t, GenerateTestName("consultado"), "Chilena")
		CreateTestBook(t, authorID, GenerateTestName("obra1"), "1982-01-01")
		CreateTestBook(t, authorID, GenerateTestName("obra2"), "1987-01-01")

		resp, status := GetJSON(t, fmt.Sprintf("%s/books/por_autor?author_id=%d", BaseURL, authorID))
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code)

		var books []BookData
		UnmarshalData(t, resp, &books)
		assert.Len(t, books, 2)
	})

	t.Run("缺少author_id参数返回400", func(t *testing.T) {
		raw, status := GetRawBody(t, BaseURL+"/books/por_autor")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{"error": "author_id parameter required"}`, string(raw))

		t.Logf("✓ 缺参错误体: %s", string(raw))
	})

	t.Run("不存在的作者返回空列表", func(t *testing.T) {
		resp, status := GetJSON(t, BaseURL+"/books/por_autor?author_id=99999999")
		require.Equal(t, http.StatusOK, status, "por_autor不校验作者存在性")
		require.Equal(t, 0, resp.Code)

		// 空列表时data经omitempty被省略或序列化为[]
		if resp.Data != nil {
			var books []BookData
			err := json.Unmarshal(resp.Data, &books)
			require.NoError(t, err)
			assert.Empty(t, books)
		}
	})
}
