package vat

import (
	"sync"

	"go.uber.org/atomic"

	"vatcalc/internal/models"
)

// MetricsCollector receives calculation events.
type MetricsCollector interface {
	RecordCalculation(country models.CountryCode)
	RecordError(operation, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordCalculation(models.CountryCode) {}
func (n *NoopMetricsCollector) RecordError(string, string)          {}

// Stats is a point-in-time copy of the counters.
type Stats struct {
	Calculations int64            `json:"calculations"`
	ByCountry    map[string]int64 `json:"by_country"`
	Errors       map[string]int64 `json:"errors"`
}

// AtomicMetricsCollector keeps in-process counters.
type AtomicMetricsCollector struct {
	total *atomic.Int64

	mu        sync.RWMutex
	byCountry map[string]*atomic.Int64
	errors    map[string]*atomic.Int64
}

func NewAtomicMetricsCollector() *AtomicMetricsCollector {
	return &AtomicMetricsCollector{
		total:     atomic.NewInt64(0),
		byCountry: make(map[string]*atomic.Int64),
		errors:    make(map[string]*atomic.Int64),
	}
}

func (m *AtomicMetricsCollector) RecordCalculation(country models.CountryCode) {
	m.total.Inc()
	m.counter(m.byCountry, string(country)).Inc()
}

func (m *AtomicMetricsCollector) RecordError(operation, errType string) {
	m.counter(m.errors, operation+":"+errType).Inc()
}

func (m *AtomicMetricsCollector) counter(set map[string]*atomic.Int64, key string) *atomic.Int64 {
	m.mu.RLock()
	c, ok := set[key]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = set[key]; !ok {
		c = atomic.NewInt64(0)
		set[key] = c
	}
	return c
}

// Snapshot copies the current counter values.
func (m *AtomicMetricsCollector) Snapshot() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Calculations: m.total.Load(),
		ByCountry:    copyCounters(m.byCountry),
		Errors:       copyCounters(m.errors),
	}
}

func copyCounters(set map[string]*atomic.Int64) map[string]int64 {
	out := make(map[string]int64, len(set))
	for k, v := range set {
		out[k] = v.Load()
	}
	return out
}
