package review

import (
	"time"
)

// 评分范围
const (
	ScoreMin  = 1   // 整数评分下限
	ScoreMax  = 5   // 整数评分上限
	RatingMin = 0.0 // 浮点评分下限
	RatingMax = 5.0 // 浮点评分上限
)

// Review 书评实体
// 设计说明:
// 1. 每条书评恰好属于一本图书(BookID外键,删除图书时级联删除)
// 2. Score(calificacion)是1-5的整数评分,必填
// 3. Rating是0.0-5.0的浮点评分,可空;创建时缺省则用Score补填(默认填充规则,
//    不是校验失败)
// 4. ReviewedAt(fecha)创建时可由调用方提供,缺省取系统时间;创建后不可变
type Review struct {
	ID         uint
	BookID     uint     // 所属图书ID(libro)
	Text       string   // 书评正文(texto)
	Score      int      // 整数评分(calificacion),1-5
	Rating     *float64 // 浮点评分,0.0-5.0,可空
	ReviewedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewReview 创建新书评(工厂方法)
// 默认填充规则:
// - rating为nil时,用score转浮点补填(不保留null)
// - reviewedAt为nil时,取系统当前时间
func NewReview(bookID uint, text string, score int, rating *float64, reviewedAt *time.Time) *Review {
	now := time.Now()

	r := &Review{
		BookID:     bookID,
		Text:       text,
		Score:      score,
		ReviewedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if rating != nil {
		v := *rating
		r.Rating = &v
	} else {
		v := float64(score)
		r.Rating = &v
	}

	if reviewedAt != nil {
		r.ReviewedAt = *reviewedAt
	}

	return r
}

// ApplyUpdate 应用字段更新(领域行为)
// nil表示该字段不修改;ReviewedAt创建后不可变,不在可更新字段之列
func (r *Review) ApplyUpdate(text *string, score *int, rating *float64) {
	if text != nil {
		r.Text = *text
	}
	if score != nil {
		r.Score = *score
	}
	if rating != nil {
		v := *rating
		r.Rating = &v
	}
	r.UpdatedAt = time.Now()
}

// ValidateScore 校验整数评分
// 业务规则:必须在[1,5]闭区间内;越界直接拒绝,不做截断
func ValidateScore(value int) error {
	if value < ScoreMin || value > ScoreMax {
		return ErrInvalidScore
	}
	return nil
}

// ValidateRating 校验浮点评分
// 业务规则:必须在[0.0,5.0]闭区间内
func ValidateRating(value float64) error {
	if value < RatingMin || value > RatingMax {
		return ErrInvalidRating
	}
	return nil
}
