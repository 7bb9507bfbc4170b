package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Details是字段级校验错误（仅校验失败时返回）
// 4. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（HTTP 201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent 删除成功响应（HTTP 204，无响应体）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := createAuthorUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)

	// 内部错误只进日志，不下发给客户端
	if appErr.Err != nil {
		log.Error().
			Err(appErr.Err).
			Int("code", appErr.Code).
			Str("path", c.Request.URL.Path).
			Msg(appErr.Message)
	}

	c.JSON(apperrors.HTTPStatus(appErr.Code), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	c.JSON(apperrors.HTTPStatus(code), Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageSize 固定每页条数
// 注意：分页大小不对客户端开放，列表接口统一每页10条
const PageSize = 10

// PageData 分页数据封装
// 设计说明：
// 1. Count是过滤后的总记录数（不是当前页条数）
// 2. Next/Previous是相邻页的页码，不存在时为null
// 3. Results是当前页数据列表
type PageData struct {
	Count    int64       `json:"count"`    // 总记录数
	Next     *int        `json:"next"`     // 下一页页码（无下一页时为null）
	Previous *int        `json:"previous"` // 上一页页码（无上一页时为null）
	Results  interface{} `json:"results"`  // 数据列表
}

// NewPageData 创建分页数据
// page是1起始的当前页码，调用方需保证page已通过越界检查
func NewPageData(results interface{}, total int64, page int) *PageData {
	data := &PageData{
		Count:   total,
		Results: results,
	}

	if page > 1 {
		prev := page - 1
		data.Previous = &prev
	}
	if int64(page)*PageSize < total {
		next := page + 1
		data.Next = &next
	}

	return data
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, results interface{}, total int64, page int) {
	Success(c, NewPageData(results, total, page))
}
