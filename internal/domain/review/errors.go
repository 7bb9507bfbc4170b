package review

import (
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// 书评领域错误定义
var (
	// ErrReviewNotFound 书评不存在
	ErrReviewNotFound = apperrors.ErrReviewNotFound

	// ErrInvalidScore 整数评分越界
	ErrInvalidScore = apperrors.New(apperrors.ErrCodeInvalidField, "评分必须在1到5之间")

	// ErrInvalidRating 浮点评分越界
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidField, "评分必须在0.0到5.0之间")
)
