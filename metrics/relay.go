package metrics

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	RELAY_TTL = time.Hour
)

type RelayMetrics struct {
	opts metric.MeasurementOption

	discoveredCounter metric.Int64Counter
	relayedCounter    metric.Int64Counter
	failedCounter     metric.Int64Counter

	relayTimeHistogram  metric.Float64Histogram
	relayStartTimeCache *ttlcache.Cache[common.Hash, time.Time]
}

// NewRelayMetrics initializes metrics of the forwarder call relayer
func NewRelayMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*RelayMetrics, error) {
	discoveredCounter, err := meter.Int64Counter(
		"teleport.DiscoveredDeposits",
		metric.WithDescription("Number of relayed teleports found on the parent chain"),
	)
	if err != nil {
		return nil, err
	}
	relayedCounter, err := meter.Int64Counter(
		"teleport.RelayedDeposits",
		metric.WithDescription("Number of forwarder calls sent by the relayer"),
	)
	if err != nil {
		return nil, err
	}
	failedCounter, err := meter.Int64Counter(
		"teleport.FailedRelays",
		metric.WithDescription("Number of forwarder calls that could not be sent"),
	)
	if err != nil {
		return nil, err
	}

	relayTimeHistogram, err := meter.Float64Histogram("teleport.RelayTime")
	if err != nil {
		return nil, err
	}

	return &RelayMetrics{
		opts:               opts,
		discoveredCounter:  discoveredCounter,
		relayedCounter:     relayedCounter,
		failedCounter:      failedCounter,
		relayTimeHistogram: relayTimeHistogram,
		relayStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[common.Hash, time.Time](RELAY_TTL),
		),
	}, nil
}

func (m *RelayMetrics) TrackDiscoveredDeposit(depositTx common.Hash) {
	m.discoveredCounter.Add(context.Background(), 1, m.opts)
	m.relayStartTimeCache.Set(depositTx, time.Now(), ttlcache.DefaultTTL)
}

func (m *RelayMetrics) TrackRelayedDeposit(depositTx common.Hash) {
	m.relayedCounter.Add(context.Background(), 1, m.opts)

	startTime := m.relayStartTimeCache.Get(depositTx)
	if startTime == nil {
		log.Warn().Msgf("Discovery time of deposit %s not found", depositTx.Hex())
		return
	}
	m.relayTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds(), m.opts)
}

func (m *RelayMetrics) TrackFailedRelay(depositTx common.Hash) {
	m.failedCounter.Add(context.Background(), 1, m.opts)
}
