package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// tracerName 本服务的Tracer名称
const tracerName = "biblioteca"

// Tracing 分布式追踪中间件
// 教学要点：
// 1. 从请求头提取上游的Trace上下文(W3C traceparent)
// 2. 每个请求一个Span,命名用"方法 路由模板"
// 3. 4xx不算Span错误(客户端问题),5xx才标记Error
func Tracing() gin.HandlerFunc {
	propagator := otel.GetTextMapPropagator()
	tracer := otel.Tracer(tracerName)

	return func(c *gin.Context) {
		// 1. 提取上游Trace上下文
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		// 2. 创建本请求的Span
		spanName := c.Request.Method + " " + c.FullPath()
		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.String("http.target", c.Request.URL.Path),
				attribute.String("client.address", c.ClientIP()),
			),
		)
		defer span.End()

		// 3. 向下游传递带Span的Context
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		// 4. 记录响应状态
		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}
	}
}
