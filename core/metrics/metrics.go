package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Registry holds every extractor metric. It is separate from the default
// registry so pushes only carry extractor series.
var Registry = prometheus.NewRegistry()

var (
	// BytesDownloaded counts compressed bytes read from the network.
	BytesDownloaded = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extractor_download_bytes_total",
		Help: "Compressed bytes read from the snapshot source",
	}))

	// BytesDecompressed counts bytes written to the local snapshot.
	BytesDecompressed = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extractor_decompressed_bytes_total",
		Help: "Decompressed bytes written to the local snapshot",
	}))

	// RecordsEmitted counts records written per command.
	RecordsEmitted = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "extractor_records_emitted_total",
		Help: "Records written to the output file",
	}, []string{"command"}))

	// ComponentsAttached counts types that received a component breakdown.
	ComponentsAttached = register(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extractor_components_attached_total",
		Help: "Types that received a component breakdown",
	}))

	// RunDuration observes whole-run duration per command and status.
	RunDuration = register(prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "extractor_run_duration_seconds",
		Help:    "Duration of extraction runs",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
	}, []string{"command", "status"}))

	// CatalogRequests counts catalog API lookups by route and status.
	CatalogRequests = register(prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "extractor_catalog_requests_total",
		Help: "Catalog API requests",
	}, []string{"route", "status"}))
)

func register[C prometheus.Collector](c C) C {
	Registry.MustRegister(c)
	return c
}

// Timer is a helper for measuring run duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveRun records the elapsed time under command and status.
func (t *Timer) ObserveRun(command string, err error) time.Duration {
	d := time.Since(t.start)
	status := "success"
	if err != nil {
		status = "failure"
	}
	RunDuration.WithLabelValues(command, status).Observe(d.Seconds())
	return d
}

// Push sends the registry to the configured Pushgateway.
// It is a no-op when no push URL is configured.
func Push(cfg Config) error {
	if cfg.PushURL == "" {
		return nil
	}
	job := cfg.Job
	if job == "" {
		job = "type_extractor"
	}
	if err := push.New(cfg.PushURL, job).Gatherer(Registry).Push(); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", cfg.PushURL, err)
	}
	return nil
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
