package metrics

import "time"

// NoopMetricsProvider drops every measurement. Tests and tools that do
// not scrape metrics wire this in instead of the Prometheus provider.
type NoopMetricsProvider struct{}

func NewNoopMetricsProvider() MetricsProvider {
	return &NoopMetricsProvider{}
}

func (n *NoopMetricsProvider) IncrementHTTPRequests(method, path, status string) {}
func (n *NoopMetricsProvider) RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
}
func (n *NoopMetricsProvider) IncrementDatabaseQueries(queryType string, success bool)          {}
func (n *NoopMetricsProvider) RecordDatabaseQueryDuration(queryType string, d time.Duration)   {}
func (n *NoopMetricsProvider) IncrementCacheHits()                                             {}
func (n *NoopMetricsProvider) IncrementCacheMisses()                                           {}
func (n *NoopMetricsProvider) RecordCacheOperationDuration(operation string, d time.Duration)  {}
func (n *NoopMetricsProvider) IncrementPostOperations(operation string, success bool)          {}
func (n *NoopMetricsProvider) IncrementCommentOperations(operation string, success bool)       {}
func (n *NoopMetricsProvider) SetServiceHealth(healthy bool)                                   {}
