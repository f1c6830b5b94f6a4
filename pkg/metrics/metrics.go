// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/storefront/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 数据库操作计数
	DBOpsTotal prometheus.Counter
	// 数据库操作耗时
	DBOpDuration prometheus.Histogram

	// 业务指标
	OrdersCreatedTotal  prometheus.Counter
	CartMutationsTotal  prometheus.Counter
	ReviewsCreatedTotal prometheus.Counter
	MailsSentTotal      prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		DBOpsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "db_ops_total",
			Help:      "Total database operations",
		}),
		DBOpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "db_op_duration_seconds",
			Help:      "Database operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		OrdersCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "orders_created_total",
			Help:      "Total orders created",
		}),
		CartMutationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "cart_mutations_total",
			Help:      "Total cart mutations",
		}),
		ReviewsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "reviews_created_total",
			Help:      "Total reviews created",
		}),
		MailsSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: serviceName,
			Name:      "mails_sent_total",
			Help:      "Total transactional mails sent",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpsTotal,
		m.DBOpDuration,
		m.OrdersCreatedTotal,
		m.CartMutationsTotal,
		m.ReviewsCreatedTotal,
		m.MailsSentTotal,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return nil
}

// StartHTTPServer 启动指标 HTTP 服务
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	go func() {
		addr := fmt.Sprintf(":%d", port)
		logger.Info(context.Background(), "Metrics server listening", "addr", addr, "path", path)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error(context.Background(), "Metrics server error", "error", err)
		}
	}()

	return nil
}
