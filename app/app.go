// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-teleport/api"
	"github.com/sprintertech/sprinter-teleport/api/handlers"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/cache"
	"github.com/sprintertech/sprinter-teleport/health"
	"github.com/sprintertech/sprinter-teleport/metrics"
	"github.com/sprintertech/sprinter-teleport/relayer"
	"github.com/sprintertech/sprinter-teleport/retryable"
	coreEvm "github.com/sygmaprotocol/sygma-core/chains/evm"
	coreListener "github.com/sygmaprotocol/sygma-core/chains/evm/listener"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"
)

var Version string

const (
	// relayerHealthTimeout is how long the relayer may go without handling l1 blocks
	relayerHealthTimeout = 5 * time.Minute
	jobBufferSize        = 100
)

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	observability.ConfigureLogger(configuration.RelayerConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	mp, err := observability.InitMetricProvider(context.Background(), configuration.RelayerConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	teleportMetrics, err := metrics.NewTeleportMetrics(ctx, mp.Meter("teleport-metric-provider"), configuration.RelayerConfig.Env, configuration.RelayerConfig.Id, Version)
	panicOnError(err)
	defer func() {
		if err := teleportMetrics.Unregister(); err != nil {
			log.Error().Msgf("Error unregistering host metrics: %v", err)
		}
	}()

	route, err := NewRoute(ctx, configuration)
	panicOnError(err)
	log.Info().Msgf(
		"Bridging from chain %d to chain %d through chain %d",
		route.Triple.L1ChainID(), route.Triple.L3ChainID(), route.Triple.L2ChainID(),
	)

	tokenBridger, err := bridger.NewRelayedErc20Bridger(route.Triple, retryable.NewWatcher())
	panicOnError(err)

	jobChn := make(chan cache.Job, jobBufferSize)
	jobCache := cache.NewJobCache(ctx, configuration.RelayerConfig.JobTTL, jobChn)

	checks := make(map[string]health.Check)
	if route.L1.Config.Relay {
		teleporter, err := route.Registry.Teleporter(route.Triple.L2ChainID())
		panicOnError(err)

		l2Signer, err := route.L2.Signer()
		panicOnError(err)

		db, err := lvldb.NewLvlDB(route.L1.Config.GeneralChainConfig.BlockstorePath)
		panicOnError(err)
		blockstore := store.NewBlockStore(db)

		l1Config := route.L1.Config
		l1ID := route.Triple.L1ChainID()
		startBlock, err := relayStartBlock(route, blockstore)
		panicOnError(err)

		r, err := relayer.NewRelayer(
			relayer.Config{
				ChainID:           l1ID,
				L2ChainID:         route.Triple.L2ChainID(),
				Teleporter:        teleporter.L1Teleporter,
				MinRelayerPayment: configuration.RelayerConfig.MinRelayerPayment,
				ProcessInterval:   l1Config.BlockRetryInterval,
				RelayTimeout:      configuration.RelayerConfig.RelayTimeout,
			},
			route.L1.Client,
			route.L2.Client,
			route.L3.Client,
			tokenBridger,
			relayer.NewForwarderRelayer(route.Registry, l2Signer),
			jobCache,
			jobChn,
			relayer.NewStateStore(db),
			teleportMetrics,
		)
		panicOnError(err)

		listener := coreListener.NewEVMListener(
			route.L1.Client,
			[]coreListener.EventHandler{r},
			blockstore,
			teleportMetrics,
			l1ID,
			l1Config.BlockRetryInterval,
			new(big.Int).SetUint64(l1Config.GeneralChainConfig.BlockConfirmations),
			l1Config.BlockInterval,
		)
		chain := coreEvm.NewEVMChain(listener, message.NewMessageHandler(), nil, l1ID, startBlock)
		log.Info().Uint64("chain", l1ID).Msgf("Listening for relayed teleports from block %s", startBlock)

		go chain.PollEvents(ctx)
		go r.Start(ctx)
		checks["relayer"] = func() error {
			return r.Healthy(relayerHealthTimeout)
		}
		log.Info().Str("relayer", l2Signer.From().Hex()).Msgf("Relaying forwarder calls on chain %d", route.Triple.L2ChainID())
	}

	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort, checks)

	router := api.NewRouter(
		handlers.NewDepositHandler(route.L1.Client, route.L2.Client, route.L3.Client, tokenBridger),
		handlers.NewRelayHandler(jobCache),
		handlers.NewNetworkHandler(route.Registry),
	)
	go api.Serve(ctx, configuration.RelayerConfig.ApiAddr, router)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	name := viper.GetString("name")
	log.Info().Msgf("Started teleport service: %s. Version: v%s", name, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

// relayStartBlock resumes from the block stored by the chain listener unless
// the chain config sets a start block, fresh services start at the chain head
func relayStartBlock(route *Route, blockstore *store.BlockStore) (*big.Int, error) {
	c := route.L1.Config
	if c.StartBlock.Sign() > 0 {
		return c.StartBlock, nil
	}

	latest, err := blockstore.GetLastStoredBlock(route.Triple.L1ChainID())
	if err != nil {
		return nil, err
	}
	if latest.Sign() > 0 {
		return latest, nil
	}

	return route.L1.Client.LatestBlock()
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
