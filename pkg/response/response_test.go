package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPageData 测试分页元数据计算
func TestNewPageData(t *testing.T) {
	t.Run("25条数据第3页", func(t *testing.T) {
		// 25条数据、每页10条：第3页有5条，没有下一页，有上一页
		items := make([]int, 5)
		page := NewPageData(items, 25, 3)

		assert.Equal(t, int64(25), page.Count)
		assert.Nil(t, page.Next, "第3页不应有下一页")
		require.NotNil(t, page.Previous, "第3页应有上一页")
		assert.Equal(t, 2, *page.Previous)
	})

	t.Run("首页", func(t *testing.T) {
		page := NewPageData(make([]int, 10), 25, 1)

		assert.Nil(t, page.Previous, "首页不应有上一页")
		require.NotNil(t, page.Next)
		assert.Equal(t, 2, *page.Next)
	})

	t.Run("中间页", func(t *testing.T) {
		page := NewPageData(make([]int, 10), 25, 2)

		require.NotNil(t, page.Previous)
		require.NotNil(t, page.Next)
		assert.Equal(t, 1, *page.Previous)
		assert.Equal(t, 3, *page.Next)
	})

	t.Run("空集合第1页", func(t *testing.T) {
		page := NewPageData([]int{}, 0, 1)

		assert.Equal(t, int64(0), page.Count)
		assert.Nil(t, page.Next)
		assert.Nil(t, page.Previous)
	})

	t.Run("总数恰好整页", func(t *testing.T) {
		// 20条数据第2页：正好最后一页
		page := NewPageData(make([]int, 10), 20, 2)

		assert.Nil(t, page.Next, "最后一页不应有下一页")
		require.NotNil(t, page.Previous)
	})
}
