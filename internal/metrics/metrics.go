// Package metrics exposes Prometheus counters for calculator usage.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels the result of one calculation
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeInvalid Outcome = "invalid"
	OutcomeError   Outcome = "error"
)

// Collector bundles the calculator metrics and serves them over HTTP.
type Collector struct {
	gatherer prometheus.Gatherer

	Calculations *prometheus.CounterVec
	Durations    *prometheus.HistogramVec
	Reports      *prometheus.CounterVec
}

// NewCollector registers the metrics against reg, defaulting to the
// global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	calculations, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "antcalc_calculations_total",
		Help: "Total number of calculations, labeled by calculator and outcome.",
	}, []string{"calculator", "outcome"}), "antcalc_calculations_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "antcalc_calculation_duration_seconds",
		Help:    "Calculation latency in seconds.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"calculator"}), "antcalc_calculation_duration_seconds")
	if err != nil {
		return nil, err
	}

	reports, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "antcalc_reports_stored_total",
		Help: "Total number of report bundles stored, labeled by calculator and outcome.",
	}, []string{"calculator", "outcome"}), "antcalc_reports_stored_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:     gatherer,
		Calculations: calculations,
		Durations:    durations,
		Reports:      reports,
	}, nil
}

// ObserveCalculation records one calculation that started at start.
func (c *Collector) ObserveCalculation(calculator string, outcome Outcome, start time.Time) {
	if c == nil {
		return
	}
	c.Calculations.WithLabelValues(calculator, string(outcome)).Inc()
	c.Durations.WithLabelValues(calculator).Observe(time.Since(start).Seconds())
}

// ObserveReport records one report storage attempt.
func (c *Collector) ObserveReport(calculator string, outcome Outcome) {
	if c == nil {
		return
	}
	c.Reports.WithLabelValues(calculator, string(outcome)).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
