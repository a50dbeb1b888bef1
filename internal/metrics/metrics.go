package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"findaword/internal/ga"
)

// Recorder collects run metrics on a private registry
type Recorder struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	bestScore   prometheus.Gauge
	children    prometheus.Counter
	refilled    prometheus.Counter
}

// NewRecorder creates a recorder with all collectors registered
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "findaword",
			Name:      "generations_total",
			Help:      "Generations advanced, by fitness metric and selection strategy",
		}, []string{"fitness", "selection"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "findaword",
			Name:      "generation_duration_seconds",
			Help:      "Wall time of one generation step",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "findaword",
			Name:      "best_score",
			Help:      "Best score of the last scored generation",
		}),
		children: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "findaword",
			Name:      "children_total",
			Help:      "Children produced by crossover and mutation",
		}),
		refilled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "findaword",
			Name:      "refilled_total",
			Help:      "Random individuals added to complete a generation",
		}),
	}
	r.registry.MustRegister(r.generations, r.duration, r.bestScore, r.children, r.refilled)
	return r
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one generation step
func (r *Recorder) Observe(report *ga.Report, elapsed time.Duration) {
	r.generations.WithLabelValues(report.Fitness, report.Selection).Inc()
	r.duration.Observe(elapsed.Seconds())
	r.bestScore.Set(report.BestScore)
	r.children.Add(float64(report.Children))
	r.refilled.Add(float64(report.Refilled))
}

// WriteTextfile writes all metrics in the text exposition format
func (r *Recorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
