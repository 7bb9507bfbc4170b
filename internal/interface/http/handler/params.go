package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/biblioteca/pkg/errors"
)

// parseIDParam 解析路径中的资源ID
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.New(apperrors.ErrCodeInvalidParams, "非法的资源ID")
	}
	return uint(id), nil
}

// queryPage 解析页码(默认1)
// 非法页码与越界同等对待,由分页器返回404类错误
func queryPage(c *gin.Context) (int, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, apperrors.ErrPageOutOfRange
	}
	return page, nil
}

// queryUint 解析无符号整数查询参数,缺失或非法时返回0(不过滤)
func queryUint(c *gin.Context, names ...string) uint {
	for _, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		return uint(v)
	}
	return 0
}

// queryUintPtr 解析无符号整数查询参数,缺失或非法时返回nil(不过滤)
func queryUintPtr(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// queryIntPtr 解析整数查询参数,缺失或非法时返回nil(不过滤)
func queryIntPtr(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryInt 解析整数查询参数,缺失或非法时返回0(不过滤)
func queryInt(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// queryFloatPtr 解析浮点查询参数,缺失或非法时返回nil(静默忽略)
func queryFloatPtr(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
