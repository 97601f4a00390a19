package prometheus

import (
	"strconv"
	"time"

	"blogicum-service/internal/metrics"
)

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() metrics.MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementCacheHits() {
	CacheHitsTotal.Inc()
}

func (p *PrometheusMetricsProvider) IncrementCacheMisses() {
	CacheMissesTotal.Inc()
}

func (p *PrometheusMetricsProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementPostOperations(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) IncrementCommentOperations(operation string, success bool) {
	CommentOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
