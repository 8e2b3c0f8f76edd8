package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type TeleportMetrics struct {
	*HostMetrics
	*ChainMetrics
	*RelayMetrics
}

// NewTeleportMetrics creates the service metrics labeled with the environment,
// instance and version of the service
func NewTeleportMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*TeleportMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("instance", id),
		attribute.String("version", version),
	)

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	chainMetrics, err := NewChainMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	relayMetrics, err := NewRelayMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &TeleportMetrics{
		HostMetrics:  hostMetrics,
		ChainMetrics: chainMetrics,
		RelayMetrics: relayMetrics,
	}, nil
}

// Unregister stops observing the host and chain gauges
func (m *TeleportMetrics) Unregister() error {
	err := m.HostMetrics.Unregister()
	if err != nil {
		return err
	}
	return m.ChainMetrics.Unregister()
}
