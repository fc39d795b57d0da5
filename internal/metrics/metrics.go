package metrics

import (
	"net/http"
	"strings"
	"sync"

	"github.com/jewelhub/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "jewelhub"

var (
	initOnce sync.Once

	// HTTPRequestsTotal 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration 请求耗时
	HTTPRequestDuration *prometheus.HistogramVec
	// LoginAttemptsTotal 登录尝试，按结果区分
	LoginAttemptsTotal *prometheus.CounterVec
	// CatalogResolveTotal 店铺目录解析次数，按来源区分（cache / store）
	CatalogResolveTotal *prometheus.CounterVec
	// CatalogMutationsTotal 目录变更次数，按审计动作区分
	CatalogMutationsTotal *prometheus.CounterVec
)

// Init 注册指标（进程内只执行一次）
func Init(cfg config.MetricsConfig) {
	initOnce.Do(func() {
		namespace := strings.TrimSpace(cfg.ServiceName)
		if namespace == "" {
			namespace = defaultNamespace
		}
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)
		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)
		LoginAttemptsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of credential login attempts",
			},
			[]string{"result"},
		)
		CatalogResolveTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_resolve_total",
				Help:      "Total number of storefront catalog resolutions",
			},
			[]string{"shop_id"},
		)
		CatalogMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_mutations_total",
				Help:      "Total number of catalog mutations",
			},
			[]string{"action"},
		)
	})
}

// ObserveHTTPRequest 记录一次请求
func ObserveHTTPRequest(method, path, status string, seconds float64) {
	if HTTPRequestsTotal == nil || HTTPRequestDuration == nil {
		return
	}
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// IncLoginAttempt 记录登录结果
func IncLoginAttempt(result string) {
	if LoginAttemptsTotal == nil {
		return
	}
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}

// IncCatalogResolve 记录店铺目录解析
func IncCatalogResolve(shopID string) {
	if CatalogResolveTotal == nil {
		return
	}
	CatalogResolveTotal.WithLabelValues(shopID).Inc()
}

// IncCatalogMutation 记录目录变更
func IncCatalogMutation(action string) {
	if CatalogMutationsTotal == nil {
		return
	}
	CatalogMutationsTotal.WithLabelValues(action).Inc()
}

// Handler 指标导出处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
