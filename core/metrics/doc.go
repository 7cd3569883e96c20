// Package metrics provides Prometheus metrics for extraction runs.
//
// The extractor is a batch job, so its metrics are pushed to a Pushgateway at
// the end of each run when metrics.push_url is configured. The catalog server
// exposes the same Registry on /metrics.
package metrics
