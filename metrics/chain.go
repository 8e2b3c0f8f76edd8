package metrics

import (
	"context"
	"math/big"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type ChainMetrics struct {
	opts metric.MeasurementOption

	blockDeltaGauge metric.Int64ObservableGauge
	registration    metric.Registration

	lock        sync.Mutex
	blockDeltas map[uint64]int64
}

// NewChainMetrics observes how far the chain listeners trail the chain heads
func NewChainMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*ChainMetrics, error) {
	m := &ChainMetrics{
		opts:        opts,
		blockDeltas: make(map[uint64]int64),
	}

	var err error
	m.blockDeltaGauge, err = meter.Int64ObservableGauge(
		"teleport.BlockDelta",
		metric.WithDescription("Difference between the chain head and the last handled block"),
	)
	if err != nil {
		return nil, err
	}

	m.registration, err = meter.RegisterCallback(func(ctx context.Context, o metric.Observer) error {
		m.lock.Lock()
		defer m.lock.Unlock()

		for domainID, delta := range m.blockDeltas {
			// nolint:gosec
			o.ObserveInt64(m.blockDeltaGauge, delta, m.opts, metric.WithAttributes(attribute.Int64("chainID", int64(domainID))))
		}
		return nil
	}, m.blockDeltaGauge)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// TrackBlockDelta records the distance of the handled block to the head
func (m *ChainMetrics) TrackBlockDelta(domainID uint64, head *big.Int, current *big.Int) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.blockDeltas[domainID] = new(big.Int).Sub(head, current).Int64()
}

func (m *ChainMetrics) BlockDelta(domainID uint64) int64 {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.blockDeltas[domainID]
}

func (m *ChainMetrics) Unregister() error {
	return m.registration.Unregister()
}
