package utils

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aems_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aems_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path", "status"})

	// MatchCounter는 판정 방식별 매칭 수행 수를 추적합니다
	MatchCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aems_match_total",
		Help: "판정 방식별 매칭 수행 수",
	}, []string{"method"})

	// MatchProcessingTime은 단일 매칭 처리 시간을 측정합니다
	MatchProcessingTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aems_match_processing_time_seconds",
		Help:    "단일 매칭 처리 시간(초)",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	// BatchProcessingTime은 배치 매칭 처리 시간을 측정합니다
	BatchProcessingTime = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aems_batch_match_processing_time_seconds",
		Help:    "배치 매칭 처리 시간(초)",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
	})

	// BatchTargetCount는 배치 매칭 대상 수 분포를 측정합니다
	BatchTargetCount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aems_batch_match_targets",
		Help:    "배치 매칭 요청당 대상 기관 수",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
	})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aems_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ServerMetric은 서버 상태 게이지입니다 (load, healthy, capacity)
	ServerMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "aems_server_status",
		Help: "서버 상태 게이지",
	}, []string{"server", "metric"})
)

// InitMetrics는 모든 메트릭을 등록합니다
func InitMetrics() {
	// 모든 메트릭을 기본 레지스트리에 등록
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(ResponseTime)
	prometheus.MustRegister(MatchCounter)
	prometheus.MustRegister(MatchProcessingTime)
	prometheus.MustRegister(BatchProcessingTime)
	prometheus.MustRegister(BatchTargetCount)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(ServerMetric)

	fmt.Println("메트릭 초기화 완료")
}

// RecordRequest는 HTTP 요청 메트릭을 기록합니다
func RecordRequest(method, path string, status int, duration float64) {
	statusLabel := fmt.Sprintf("%d", status)
	RequestCounter.WithLabelValues(method, path, statusLabel).Inc()
	ResponseTime.WithLabelValues(method, path, statusLabel).Observe(duration)
}

// RecordMatch는 단일 매칭 수행 메트릭을 기록합니다
func RecordMatch(method string, duration float64) {
	MatchCounter.WithLabelValues(method).Inc()
	MatchProcessingTime.Observe(duration)
}

// RecordBatchMatch는 배치 매칭 수행 메트릭을 기록합니다
func RecordBatchMatch(targetCount int, duration float64) {
	BatchTargetCount.Observe(float64(targetCount))
	BatchProcessingTime.Observe(duration)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// UpdateServerMetric은 서버 상태 게이지를 갱신합니다
func UpdateServerMetric(server, metric string, value float64) {
	ServerMetric.WithLabelValues(server, metric).Set(value)
}

// GetSystemMetrics는 현재 CPU/메모리 사용률(0~1)을 수집합니다
func GetSystemMetrics() (float64, float64) {
	cpuUsage := 0.0
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100
	}

	memoryUsage := 0.0
	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100
	}

	return cpuUsage, memoryUsage
}
