package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/steer/steering"
)

const instrumentationName = "github.com/lixenwraith/steer/engine"

// metrics holds the engine counters, reported through the global MeterProvider
type metrics struct {
	ticks       metric.Int64Counter
	catches     metric.Int64Counter
	transitions metric.Int64Counter
	skipped     metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)
	m, err := buildMetrics(meter)
	if err != nil {
		// Instrument creation only fails on invalid names; fall back to no-op
		m, _ = buildMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return m
}

func buildMetrics(meter metric.Meter) (*metrics, error) {
	var (
		m   metrics
		err error
	)
	if m.ticks, err = meter.Int64Counter("steer.ticks",
		metric.WithDescription("Simulation ticks evaluated")); err != nil {
		return nil, err
	}
	if m.catches, err = meter.Int64Counter("steer.catches",
		metric.WithDescription("Pursuit target catches")); err != nil {
		return nil, err
	}
	if m.transitions, err = meter.Int64Counter("steer.transitions",
		metric.WithDescription("Behavior switches")); err != nil {
		return nil, err
	}
	if m.skipped, err = meter.Int64Counter("steer.skipped_ticks",
		metric.WithDescription("Ticks with steering skipped for a missing entity")); err != nil {
		return nil, err
	}
	return &m, nil
}

func behaviorAttr(b steering.Behavior) metric.AddOption {
	return metric.WithAttributes(attribute.String("behavior", b.String()))
}

func (m *metrics) tick(b steering.Behavior) {
	m.ticks.Add(context.Background(), 1, behaviorAttr(b))
}

func (m *metrics) catch() {
	m.catches.Add(context.Background(), 1)
}

func (m *metrics) transition(to steering.Behavior) {
	m.transitions.Add(context.Background(), 1, behaviorAttr(to))
}

func (m *metrics) skip(b steering.Behavior) {
	m.skipped.Add(context.Background(), 1, behaviorAttr(b))
}
