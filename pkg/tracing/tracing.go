// Package tracing 提供基于OpenTelemetry的分布式追踪
//
// 核心概念：
// - Trace：一次请求的完整链路，由TraceID标识
// - Span：链路中的一个操作单元（开始/结束时间、属性、状态）
// - 上下文传播：TraceID/SpanID通过context.Context和HTTP Header传递
//
// 使用方式：
//
//	shutdown, err := tracing.InitTracer("biblioteca", "localhost:4317")
//	if err != nil { log.Fatal(err) }
//	defer shutdown(context.Background())
//
//	tracer := otel.Tracer("biblioteca")
//	ctx, span := tracer.Start(ctx, "ListBooks")
//	defer span.End()
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - collectorURL: OTLP gRPC端点（如：localhost:4317）
//
// 返回：
//   - shutdown: 关闭函数（程序退出时调用，确保缓冲的Span被刷出）
//
// 设计要点：
// 1. 使用OTLP协议而非Jaeger原生协议（厂商中立，可切换Zipkin/Datadog）
// 2. 采样策略：AlwaysSample适合开发环境，生产建议TraceIDRatioBased
// 3. 资源属性：service.name用于在Jaeger UI中按服务分组
func InitTracer(serviceName, collectorURL string) (func(context.Context) error, error) {
	// 1. 创建OTLP gRPC Exporter
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(collectorURL),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// 2. 创建Resource（服务元信息）
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("创建Resource失败: %w", err)
	}

	// 3. 创建Tracer Provider
	// BatchSpanProcessor批量异步上报，避免阻塞请求路径
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	// 4. 设置为全局Provider，并注册W3C TraceContext传播器
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
