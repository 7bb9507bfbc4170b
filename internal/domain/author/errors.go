package author

import (
	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// 作者领域错误定义
var (
	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.ErrAuthorNotFound

	// ErrEmptyName 姓名为空或仅包含空格
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidField, "姓名不能为空或仅包含空格")

	// ErrNameTooLong 姓名超长
	ErrNameTooLong = apperrors.New(apperrors.ErrCodeInvalidField, "姓名不能超过100个字符")

	// ErrNationalityTooLong 国籍超长
	ErrNationalityTooLong = apperrors.New(apperrors.ErrCodeInvalidField, "国籍不能超过50个字符")
)
