package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTime time.Time

	startTimeGauge metric.Int64ObservableGauge
	uptimeGauge    metric.Float64ObservableGauge
	registration   metric.Registration
}

// NewHostMetrics observes the start time and uptime of the service host
func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	m := &HostMetrics{
		startTime: time.Now(),
	}

	var err error
	m.startTimeGauge, err = meter.Int64ObservableGauge(
		"teleport.StartTimeSeconds",
		metric.WithDescription("Start time of the teleport service"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	m.uptimeGauge, err = meter.Float64ObservableGauge(
		"teleport.UptimeSeconds",
		metric.WithDescription("Time since the teleport service started"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.registration, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		o.ObserveInt64(m.startTimeGauge, m.startTime.Unix(), opts)
		o.ObserveFloat64(m.uptimeGauge, time.Since(m.startTime).Seconds(), opts)
		return nil
	}, m.startTimeGauge, m.uptimeGauge)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Unregister stops observing the host gauges
func (m *HostMetrics) Unregister() error {
	return m.registration.Unregister()
}
