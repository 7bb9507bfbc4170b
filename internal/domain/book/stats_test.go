package book

import (
	"testing"
	"time"

	"github.com/xiebiao/biblioteca/internal/domain/review"
)

func ratedReview(rating float64, reviewedAt time.Time) *review.Review {
	r := rating
	return &review.Review{Rating: &r, ReviewedAt: reviewedAt}
}

// TestAverageRating_Empty 测试无书评时均值为nil
func TestAverageRating_Empty(t *testing.T) {
	if avg := AverageRating(nil); avg != nil {
		t.Errorf("期望nil, 实际%v", *avg)
	}

	// 有书评但全部缺rating时同样为nil
	noRating := []*review.Review{{ReviewedAt: time.Now()}}
	if avg := AverageRating(noRating); avg != nil {
		t.Errorf("期望nil, 实际%v", *avg)
	}
}

// TestAverageRating_Rounding 测试均值保留两位小数
func TestAverageRating_Rounding(t *testing.T) {
	now := time.Now()
	reviews := []*review.Review{
		ratedReview(4.0, now),
		ratedReview(3.5, now),
		ratedReview(4.8, now),
	}

	avg := AverageRating(reviews)
	if avg == nil {
		t.Fatal("期望非nil均值")
	}
	// (4.0+3.5+4.8)/3 = 4.1
	if *avg != 4.1 {
		t.Errorf("期望4.1, 实际%v", *avg)
	}
}

// TestAverageRating_OrderIndependent 测试均值与书评顺序无关
func TestAverageRating_OrderIndependent(t *testing.T) {
	now := time.Now()
	a := AverageRating([]*review.Review{
		ratedReview(1.0, now),
		ratedReview(5.0, now),
		ratedReview(3.3, now),
	})
	b := AverageRating([]*review.Review{
		ratedReview(3.3, now),
		ratedReview(1.0, now),
		ratedReview(5.0, now),
	})

	if a == nil || b == nil {
		t.Fatal("期望非nil均值")
	}
	if *a != *b {
		t.Errorf("均值与顺序相关: %v != %v", *a, *b)
	}
}

// TestAverageRating_SkipsUnrated 测试缺rating的书评不参与聚合
func TestAverageRating_SkipsUnrated(t *testing.T) {
	now := time.Now()
	reviews := []*review.Review{
		ratedReview(4.0, now),
		{ReviewedAt: now}, // 无rating
		ratedReview(2.0, now),
	}

	avg := AverageRating(reviews)
	if avg == nil {
		t.Fatal("期望非nil均值")
	}
	if *avg != 3.0 {
		t.Errorf("期望3.0, 实际%v", *avg)
	}
}

// TestRound2 测试两位小数舍入
func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.666666, 4.67},
		{4.125, 4.13},
		{4.0, 4.0},
		{3.994999, 3.99},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v): 期望%v, 实际%v", c.in, c.want, got)
		}
	}
}

// TestRecentReviews 测试最新书评按时间降序截断
func TestRecentReviews(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reviews := make([]*review.Review, 0, 7)
	for i := 0; i < 7; i++ {
		reviews = append(reviews, ratedReview(4.0, base.AddDate(0, 0, i)))
	}

	recent := RecentReviews(reviews, RecentReviewLimit)
	if len(recent) != RecentReviewLimit {
		t.Fatalf("期望%d条, 实际%d条", RecentReviewLimit, len(recent))
	}

	// 时间非递增
	for i := 1; i < len(recent); i++ {
		if recent[i].ReviewedAt.After(recent[i-1].ReviewedAt) {
			t.Errorf("第%d条书评时间晚于前一条", i)
		}
	}

	// 最新的一条排在最前
	if !recent[0].ReviewedAt.Equal(base.AddDate(0, 0, 6)) {
		t.Errorf("首条不是最新书评: %v", recent[0].ReviewedAt)
	}

	// 入参切片未被修改
	if !reviews[0].ReviewedAt.Equal(base) {
		t.Error("入参切片被修改")
	}
}

// TestRecentReviews_FewerThanLimit 测试书评不足上限时全部返回
func TestRecentReviews_FewerThanLimit(t *testing.T) {
	now := time.Now()
	reviews := []*review.Review{ratedReview(4.0, now), ratedReview(3.0, now.Add(-time.Hour))}

	recent := RecentReviews(reviews, RecentReviewLimit)
	if len(recent) != 2 {
		t.Errorf("期望2条, 实际%d条", len(recent))
	}
}

// TestSummarize 测试聚合统计的条数口径
func TestSummarize(t *testing.T) {
	now := time.Now()
	reviews := []*review.Review{
		ratedReview(4.0, now),
		{ReviewedAt: now}, // 无rating
		ratedReview(5.0, now),
	}

	stats := Summarize(reviews)
	if stats.TotalReviews != 3 {
		t.Errorf("期望总数3, 实际%d", stats.TotalReviews)
	}
	if stats.RatedReviews != 2 {
		t.Errorf("期望带rating数2, 实际%d", stats.RatedReviews)
	}
	if stats.AverageRating == nil || *stats.AverageRating != 4.5 {
		t.Errorf("期望均值4.5, 实际%v", stats.AverageRating)
	}
}
