package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：书评模块集成测试
//
// 测试场景覆盖：
// 1. 书评CRUD与rating默认填充
// 2. 按图书、星级、rating范围过滤，文本搜索
// 3. 参数验证（calificacion取值1-5，rating取值0.0-5.0）
// 4. fecha创建后不可变

// TestReviewCreate 测试书评创建与校验
func TestReviewCreate(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("reseñado"), "Colombiana")
	bookID := CreateTestBook(t, authorID, GenerateTestName("libro"), "1967-06-05")

	t.Run("正常创建书评", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"libro":        bookID,
			"texto":        "Una obra maestra de la literatura latinoamericana.",
			"calificacion": 5,
			"rating":       4.9,
		})

		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, 0, resp.Code, "创建失败: %s", resp.Message)

		var review ReviewData
		UnmarshalData(t, resp, &review)
		assert.NotZero(t, review.ID)
		assert.Equal(t, bookID, review.Libro)
		assert.Equal(t, 5, review.Calificacion)
		require.NotNil(t, review.Rating)
		assert.InDelta(t, 4.9, *review.Rating, 0.001)
		assert.NotEmpty(t, review.Fecha, "fecha缺省为当前时间")

		t.Logf("✓ 创建成功，书评ID: %d", review.ID)
	})

	t.Run("缺省rating时用calificacion填充", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"libro":        bookID,
			"texto":        "Reseña sin rating explícito.",
			"calificacion": 4,
		})

		require.Equal(t, http.StatusCreated, status)

		var review ReviewData
		UnmarshalData(t, resp, &review)
		require.NotNil(t, review.Rating, "rating应被默认填充")
		assert.InDelta(t, 4.0, *review.Rating, 0.001, "默认值为float(calificacion)")

		t.Logf("✓ rating默认填充为%.1f", *review.Rating)
	})

	t.Run("显式fecha被保留", func(t *testing.T) {
		fecha := time.Date(2020, 3, 15, 10, 30, 0, 0, time.UTC).Format(time.RFC3339)
		resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"libro":        bookID,
			"texto":        "Reseña con fecha explícita.",
			"calificacion": 3,
			"fecha":        fecha,
		})

		require.Equal(t, http.StatusCreated, status)

		var review ReviewData
		UnmarshalData(t, resp, &review)
		parsed, err := time.Parse(time.RFC3339, review.Fecha)
		require.NoError(t, err)
		assert.Equal(t, 2020, parsed.Year())
	})

	t.Run("calificacion超出范围应失败", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
				"libro":        bookID,
				"texto":        "Reseña con calificación inválida.",
				"calificacion": score,
			})
			assert.Equal(t, http.StatusBadRequest, status, "calificacion=%d应被拒绝", score)
			assert.Contains(t, resp.Details, "calificacion")
		}
	})

	t.Run("rating超出范围应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"libro":        bookID,
			"texto":        "Reseña con rating inválido.",
			"calificacion": 4,
			"rating":       5.5,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Details, "rating")
	})

	t.Run("边界值应通过", func(t *testing.T) {
		for _, c := range []struct {
			score  int
			rating float64
		}{
			{1, 0.0},
			{5, 5.0},
		} {
			resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
				"libro":        bookID,
				"texto":        "Reseña con valores límite.",
				"calificacion": c.score,
				"rating":       c.rating,
			})
			assert.Equal(t, http.StatusCreated, status, "边界值应被接受: %s", resp.Message)
		}
	})

	t.Run("不存在的图书应失败", func(t *testing.T) {
		resp, status := PostJSON(t, BaseURL+"/reviews", map[string]interface{}{
			"libro":        99999999,
			"texto":        "Reseña de un libro fantasma.",
			"calificacion": 4,
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40402, resp.Code, "应返回图书不存在错误码")
	})
}

// TestReviewFilters 测试书评过滤与搜索
func TestReviewFilters(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("filtrador"), "Argentina")
	titulo := GenerateTestName("rayuela")
	bookID := CreateTestBook(t, authorID, titulo, "1963-06-28")
	CreateTestReview(t, bookID, "Reseña entusiasta del libro.", 5, FloatPtr(4.8))
	CreateTestReview(t, bookID, "Reseña moderada del libro.", 4, FloatPtr(4.2))
	CreateTestReview(t, bookID, "Reseña tibia del libro.", 3, FloatPtr(3.0))

	t.Run("按图书过滤", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d", BaseURL, bookID))
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(3), page.Count)
	})

	t.Run("按星级精确过滤", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d&calificacion=5", BaseURL, bookID))
		page := UnmarshalPage(t, resp)
		require.Equal(t, int64(1), page.Count)

		var reviews []ReviewData
		UnmarshalResults(t, page, &reviews)
		assert.Equal(t, 5, reviews[0].Calificacion)
	})

	t.Run("rating范围为闭区间", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d&rating_min=4.2&rating_max=5.0", BaseURL, bookID))
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(2), page.Count, "rating=4.2应包含在[4.2, 5.0]内")
	})

	t.Run("非法rating参数被忽略", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d&rating_min=abc", BaseURL, bookID))
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(3), page.Count, "无法解析的rating_min应被静默忽略")

		t.Logf("✓ rating_min=abc被忽略，返回全部%d条", page.Count)
	})

	t.Run("按图书标题搜索", func(t *testing.T) {
		resp, _ := GetJSON(t, BaseURL+"/reviews?search="+titulo)
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(3), page.Count, "搜索应命中图书标题")
	})

	t.Run("按书评文本搜索", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d&search=entusiasta", BaseURL, bookID))
		page := UnmarshalPage(t, resp)
		assert.Equal(t, int64(1), page.Count)
	})

	t.Run("按rating升序排序", func(t *testing.T) {
		resp, _ := GetJSON(t, fmt.Sprintf("%s/reviews?libro=%d&ordering=rating", BaseURL, bookID))
		page := UnmarshalPage(t, resp)

		var reviews []ReviewData
		UnmarshalResults(t, page, &reviews)
		require.Len(t, reviews, 3)
		assert.InDelta(t, 3.0, *reviews[0].Rating, 0.001)
		assert.InDelta(t, 4.8, *reviews[2].Rating, 0.001)
	})
}

// TestReviewUpdateAndDelete 测试书评更新与删除
func TestReviewUpdateAndDelete(t *testing.T) {
	authorID := CreateTestAuthor(t, GenerateTestName("crítico"), "Chilena")
	bookID := CreateTestBook(t, authorID, GenerateTestName("criticado"), "1982-01-01")

	t.Run("PATCH更新文本且fecha不变", func(t *testing.T) {
		reviewID := CreateTestReview(t, bookID, "Texto original de la reseña.", 4, FloatPtr(4.0))

		getResp, _ := GetJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID))
		var before ReviewData
		UnmarshalData(t, getResp, &before)

		resp, status := DoJSON(t, http.MethodPatch, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), map[string]interface{}{
			"texto": "Texto revisado de la reseña.",
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, 0, resp.Code, "更新失败: %s", resp.Message)

		var after ReviewData
		UnmarshalData(t, resp, &after)
		assert.Equal(t, "Texto revisado de la reseña.", after.Texto)
		assert.Equal(t, 4, after.Calificacion, "未提供的字段应保持原值")
		assert.Equal(t, before.Fecha, after.Fecha, "fecha创建后不可变")

		t.Logf("✓ 更新成功，fecha保持%s", after.Fecha)
	})

	t.Run("PATCH更新calificacion不回填rating", func(t *testing.T) {
		reviewID := CreateTestReview(t, bookID, "Reseña para cambiar calificación.", 3, FloatPtr(3.5))

		resp, status := DoJSON(t, http.MethodPatch, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), map[string]interface{}{
			"calificacion": 5,
		})
		require.Equal(t, http.StatusOK, status)

		var review ReviewData
		UnmarshalData(t, resp, &review)
		assert.Equal(t, 5, review.Calificacion)
		require.NotNil(t, review.Rating)
		assert.InDelta(t, 3.5, *review.Rating, 0.001, "默认填充只发生在创建时")
	})

	t.Run("更新为非法calificacion应失败", func(t *testing.T) {
		reviewID := CreateTestReview(t, bookID, "Reseña con destino inválido.", 4, nil)

		resp, status := DoJSON(t, http.MethodPatch, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), map[string]interface{}{
			"calificacion": 6,
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Details, "calificacion")
	})

	t.Run("删除书评返回204后再查询404", func(t *testing.T) {
		reviewID := CreateTestReview(t, bookID, "Reseña que será eliminada.", 4, nil)

		_, status := DoJSON(t, http.MethodDelete, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), nil)
		assert.Equal(t, http.StatusNoContent, status)

		resp, status := GetJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, 40403, resp.Code)
	})

	t.Run("删除书评后平均分随之更新", func(t *testing.T) {
		statsBook := CreateTestBook(t, authorID, GenerateTestName("recalculado"), "1982-01-01")
		CreateTestReview(t, statsBook, "Reseña que permanece.", 4, FloatPtr(4.0))
		drop := CreateTestReview(t, statsBook, "Reseña que se elimina.", 5, FloatPtr(5.0))

		_, status := DoJSON(t, http.MethodDelete, fmt.Sprintf("%s/reviews/%d", BaseURL, drop), nil)
		require.Equal(t, http.StatusNoContent, status)

		resp, _ := GetJSON(t, fmt.Sprintf("%s/books/%d/rating_promedio", BaseURL, statsBook))
		var stats StatsData
		UnmarshalData(t, resp, &stats)
		assert.Equal(t, int64(1), stats.TotalResenas)
		require.NotNil(t, stats.RatingPromedio)
		assert.InDelta(t, 4.0, *stats.RatingPromedio, 0.001, "缓存应在删除书评后失效")
	})
}
