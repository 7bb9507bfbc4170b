package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Details是字段级错误明细（校验失败时按字段返回，key为字段名）
// 4. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int               `json:"code"`              // 业务错误码
	Message string            `json:"message"`           // 用户友好的错误提示
	Details map[string]string `json:"details,omitempty"` // 字段级错误明细
	Err     error             `json:"-"`                 // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidation 创建字段校验错误
// 用途：聚合多个字段的校验失败，按字段返回给客户端
// 约定：details的key是对外的字段名（如resumen、calificacion），value是失败原因
func NewValidation(details map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidField,
		Message: "字段校验失败",
		Details: details,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败、资源不存在）
// - 5xxxx: 服务端错误（数据库异常、缓存服务异常）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 资源错误（40400-40499）
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound = 40401 // 作者不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeReviewNotFound = 40403 // 书评不存在
	ErrCodePageOutOfRange = 40404 // 页码超出范围

	// 参数错误（40900-40999）
	ErrCodeInvalidParams    = 40900 // 参数错误
	ErrCodeBindError        = 40901 // 参数绑定失败
	ErrCodeMissingParameter = 40902 // 缺少必需参数
	ErrCodeInvalidField     = 40903 // 字段校验失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 资源不存在
	ErrAuthorNotFound = New(ErrCodeAuthorNotFound, "作者不存在")
	ErrBookNotFound   = New(ErrCodeBookNotFound, "图书不存在")
	ErrReviewNotFound = New(ErrCodeReviewNotFound, "书评不存在")
	ErrPageOutOfRange = New(ErrCodePageOutOfRange, "页码超出范围")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// HTTPStatus 业务错误码到HTTP状态码的映射
// 设计说明：
// 早期版本所有响应都返回HTTP 200，客户端只看code字段；
// REST接口要求错误类别体现在状态码上（404资源不存在、400参数/校验错误），
// 因此按错误码区间映射状态码。
func HTTPStatus(code int) int {
	switch {
	case code == 0:
		return 200
	case code >= 40400 && code < 40500:
		return 404
	case code >= 40900 && code < 41000:
		return 400
	case code >= 40000 && code < 40400:
		return 400
	default:
		return 500
	}
}
