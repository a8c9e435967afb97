package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit   = "hit"
	resultEmpty = "empty"
	resultError = "error"
)

// Metrics holds the Prometheus collectors for fortune use cases.
type Metrics struct {
	created            prometheus.Counter
	validationFailures prometheus.Counter
	random             *prometheus.CounterVec
}

// NewMetrics creates the fortune collectors and registers them with reg.
// Collectors that are already registered are reused, so calling NewMetrics
// twice against the same registry is safe.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	created, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fortune",
		Name:      "created_total",
		Help:      "Number of fortunes stored.",
	}))
	if err != nil {
		return nil, err
	}

	rejected, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fortune",
		Name:      "validation_failures_total",
		Help:      "Number of create requests rejected by validation.",
	}))
	if err != nil {
		return nil, err
	}

	random, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fortune",
		Name:      "random_total",
		Help:      "Random fortune lookups by result (hit, empty, error).",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		created:            created,
		validationFailures: rejected,
		random:             random,
	}, nil
}

// NopMetrics returns collectors that are not registered anywhere.
func NopMetrics() *Metrics {
	m, _ := NewMetrics(prometheus.NewRegistry())
	return m
}

func (m *Metrics) observeRandom(result string) {
	m.random.WithLabelValues(result).Inc()
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}
