package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsPrefix = "codec_validate"

// WriteMetrics writes the run as a Prometheus textfile, suitable for the node
// exporter textfile collector or CI artifact upload.
func WriteMetrics(path string, run *Run) error {
	reg := prometheus.NewRegistry()

	labelNames := []string{"file"}
	errorsTotal := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricsPrefix + "_errors",
		Help: "Number of validation errors in the codec file",
	}, labelNames)
	warningsTotal := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricsPrefix + "_warnings",
		Help: "Number of validation warnings in the codec file",
	}, labelNames)
	entries := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricsPrefix + "_entries",
		Help: "Number of entries in the codec file",
	}, labelNames)
	valid := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metricsPrefix + "_valid",
		Help: "1 if the codec file passed validation",
	}, labelNames)
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: metricsPrefix + "_duration_seconds",
		Help: "Wall time of the validation run",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: metricsPrefix + "_last_run_timestamp_seconds",
		Help: "Unix time the validation run started",
	})

	for _, c := range []prometheus.Collector{errorsTotal, warningsTotal, entries, valid, duration, lastRun} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register metric: %w", err)
		}
	}

	for _, f := range run.Files {
		errorsTotal.WithLabelValues(f.File).Set(float64(len(f.Errors)))
		warningsTotal.WithLabelValues(f.File).Set(float64(len(f.Warnings)))
		entries.WithLabelValues(f.File).Set(float64(f.Entries))
		if f.Valid {
			valid.WithLabelValues(f.File).Set(1)
		} else {
			valid.WithLabelValues(f.File).Set(0)
		}
	}
	duration.Set(run.Duration.Seconds())
	lastRun.Set(float64(run.StartedAt.Unix()))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
