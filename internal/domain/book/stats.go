package book

import (
	"math"
	"sort"

	"github.com/xiebiao/biblioteca/internal/domain/review"
)

// ReviewStats 图书的书评聚合统计
// AverageRating为nil表示没有任何带rating的书评可供聚合
type ReviewStats struct {
	AverageRating *float64
	TotalReviews  int64
	RatedReviews  int64
}

// Round2 四舍五入保留两位小数(远离零方向)
// 数据库侧AVG与内存均值统一经过这里,保证两条路径结果一致
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// AverageRating 内存中计算书评rating均值,保留两位小数
// 没有带rating的书评时返回nil
func AverageRating(reviews []*review.Review) *float64 {
	var sum float64
	var n int
	for _, r := range reviews {
		if r.Rating == nil {
			continue
		}
		sum += *r.Rating
		n++
	}
	if n == 0 {
		return nil
	}
	avg := Round2(sum / float64(n))
	return &avg
}

// RecentReviews 返回按点评时间降序的前limit条书评
// 不修改入参切片
func RecentReviews(reviews []*review.Review, limit int) []*review.Review {
	sorted := make([]*review.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReviewedAt.After(sorted[j].ReviewedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Summarize 从预载的书评切片聚合统计
func Summarize(reviews []*review.Review) *ReviewStats {
	stats := &ReviewStats{
		AverageRating: AverageRating(reviews),
		TotalReviews:  int64(len(reviews)),
	}
	for _, r := range reviews {
		if r.Rating != nil {
			stats.RatedReviews++
		}
	}
	return stats
}
