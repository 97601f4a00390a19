package metrics

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementCommentOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
