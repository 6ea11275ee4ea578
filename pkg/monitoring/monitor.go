package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ContentTypeConflicts 小节同时携带视频与图文的数据质量问题计数
	ContentTypeConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_type_conflicts_total",
			Help: "Lectures detected with both video and article payloads",
		},
	)

	// PreviewSelections 预览选中次数，按解析出的内容类型分
	PreviewSelections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preview_selections_total",
			Help: "Preview item selections by resolved content type",
		},
		[]string{"content_type"},
	)

	// QuizChecks 小测判题次数，按对错分
	QuizChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_checks_total",
			Help: "Quiz answer checks by outcome",
		},
		[]string{"outcome"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ContentTypeConflicts)
	prometheus.MustRegister(PreviewSelections)
	prometheus.MustRegister(QuizChecks)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
