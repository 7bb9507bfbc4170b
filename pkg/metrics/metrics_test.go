package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	// 验证所有指标已创建
	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if BooksCreatedTotal == nil {
		t.Error("BooksCreatedTotal未初始化")
	}
	if CacheHitsTotal == nil {
		t.Error("CacheHitsTotal未初始化")
	}
}

// TestInitMetricsIdempotent 测试重复初始化不会panic（promauto重复注册会panic）
func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics() // 第二次调用应被initialized标记拦截
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	initial := getCounterValue(t, ReviewsCreatedTotal)

	// 递增3次
	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)

	value := getCounterValue(t, ReviewsCreatedTotal)
	if value-initial != 3 {
		t.Errorf("Counter值错误: expected=+3, got=+%f", value-initial)
	}
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"key_type": "stats"}
	initial := getCounterValue(t, CacheHitsTotal.With(labels))

	IncCounterVec(CacheHitsTotal, labels)
	IncCounterVec(CacheHitsTotal, labels)
	IncCounterVec(CacheHitsTotal, map[string]string{"key_type": "detail"})

	value := getCounterValue(t, CacheHitsTotal.With(labels))
	if value-initial != 2 {
		t.Errorf("CounterVec值错误: expected=+2, got=+%f", value-initial)
	}
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	value := getGaugeValue(t, HTTPRequestsInProgress)
	if value < 1 {
		t.Errorf("Gauge值错误: expected>=1, got=%f", value)
	}
}

// getCounterValue 读取Counter当前值
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("读取Counter失败: %v", err)
	}
	return m.GetCounter().GetValue()
}

// getGaugeValue 读取Gauge当前值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()

	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("读取Gauge失败: %v", err)
	}
	return m.GetGauge().GetValue()
}
