package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/biblioteca/pkg/metrics"
)

// Metrics HTTP指标采集中间件
// 教学要点：
// 1. path标签使用路由模板(c.FullPath)而非原始URL,避免标签基数爆炸
// 2. 请求数、耗时、并发数三个维度
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncGauge(metrics.HTTPRequestsInProgress)

		c.Next()

		metrics.DecGauge(metrics.HTTPRequestsInProgress)

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404等未匹配路由归为一类
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": status,
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
