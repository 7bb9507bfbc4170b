package book

import (
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrEmptyTitle 书名为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidField, "书名不能为空")

	// ErrTitleTooLong 书名超长
	ErrTitleTooLong = apperrors.New(apperrors.ErrCodeInvalidField, "书名不能超过200个字符")

	// ErrSummaryTooShort 简介过短
	ErrSummaryTooShort = apperrors.New(apperrors.ErrCodeInvalidField, "简介不能少于50个字符")
)
