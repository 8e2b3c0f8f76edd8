// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/cache"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

type Client interface {
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type StatusReader interface {
	GetDepositStatus(ctx context.Context, receipt *types.Receipt, l2 bridger.ChainClient, l3 bridger.ChainClient) (*bridger.Erc20DepositStatus, error)
}

// DepositRelayer sends the forwarder call of a relayed teleport on l2
type DepositRelayer interface {
	RelayDeposit(ctx context.Context, info *bridger.RelayerInfo) (*types.Transaction, error)
}

type JobStore interface {
	Reserve(depositTx common.Hash) bool
}

type StateStorer interface {
	StoreState(chainID uint64, state *State) error
	State(chainID uint64) (*State, error)
}

type Metrics interface {
	TrackDiscoveredDeposit(depositTx common.Hash)
	TrackRelayedDeposit(depositTx common.Hash)
	TrackFailedRelay(depositTx common.Hash)
}

type Config struct {
	ChainID           uint64
	L2ChainID         uint64
	Teleporter        common.Address
	MinRelayerPayment *big.Int
	// ProcessInterval is the period of pending deposit checks
	ProcessInterval time.Duration
	// RelayTimeout is how long a sent forwarder call may stay unobserved
	// before it is sent again
	RelayTimeout time.Duration
}

// Relayer handles the l1 block ranges of the chain listener, collecting
// relayed teleports, and calls their forwarder once the tokens and the
// forwarder funding reached l2
type Relayer struct {
	cfg Config
	log zerolog.Logger

	l1 Client
	l2 bridger.ChainClient
	l3 bridger.ChainClient

	status  StatusReader
	relayer DepositRelayer
	jobs    JobStore
	jobChn  chan cache.Job
	store   StateStorer
	metrics Metrics

	lock  sync.Mutex
	state *State
	// lastPoll is the unix time of the last handled block range
	lastPoll atomic.Int64
}

// NewRelayer restores the pending deposits and failed blocks of the chain
// from the state store
func NewRelayer(
	cfg Config,
	l1 Client,
	l2 bridger.ChainClient,
	l3 bridger.ChainClient,
	status StatusReader,
	relayer DepositRelayer,
	jobs JobStore,
	jobChn chan cache.Job,
	store StateStorer,
	metrics Metrics,
) (*Relayer, error) {
	state, err := store.State(cfg.ChainID)
	if err != nil {
		return nil, err
	}

	r := &Relayer{
		cfg:     cfg,
		log:     log.With().Uint64("chain", cfg.ChainID).Str("teleporter", cfg.Teleporter.Hex()).Logger(),
		l1:      l1,
		l2:      l2,
		l3:      l3,
		status:  status,
		relayer: relayer,
		jobs:    jobs,
		jobChn:  jobChn,
		store:   store,
		metrics: metrics,
		state:   state,
	}
	r.lastPoll.Store(time.Now().Unix())
	if len(state.Deposits) > 0 || len(state.FailedBlocks) > 0 {
		r.log.Info().Msgf("Restored %d pending deposits and %d failed blocks", len(state.Deposits), len(state.FailedBlocks))
	}
	return r, nil
}

// HandleEvents collects the relayed teleports of the blocks from startBlock
// to endBlock inclusive. Blocks that can not be read are kept for a retry.
func (r *Relayer) HandleEvents(startBlock *big.Int, endBlock *big.Int) error {
	r.lastPoll.Store(time.Now().Unix())

	r.lock.Lock()
	defer r.lock.Unlock()

	ctx := context.Background()
	for n := new(big.Int).Set(startBlock); n.Cmp(endBlock) <= 0; n.Add(n, big.NewInt(1)) {
		err := r.processBlock(ctx, n)
		if err != nil {
			r.log.Warn().Err(err).Msgf("Failed reading block %s, scheduled for retry", n)
			r.state.FailedBlocks = append(r.state.FailedBlocks, new(big.Int).Set(n))
		}
	}

	return r.persist()
}

// Start checks the pending deposits and retries failed blocks until the
// context is cancelled
func (r *Relayer) Start(ctx context.Context) {
	r.log.Info().Msgf("Starting relayer with %d pending deposits", r.Pending())

	ticker := time.NewTicker(r.cfg.ProcessInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RetryFailedBlocks(ctx)
			r.ProcessPending(ctx)
		}
	}
}

// RetryFailedBlocks reads the blocks that failed while their range was handled
func (r *Relayer) RetryFailedBlocks(ctx context.Context) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if len(r.state.FailedBlocks) == 0 {
		return
	}

	failed := make([]*big.Int, 0)
	for _, n := range r.state.FailedBlocks {
		err := r.processBlock(ctx, n)
		if err != nil {
			r.log.Warn().Err(err).Msgf("Failed reading block %s", n)
			failed = append(failed, n)
		}
	}
	r.state.FailedBlocks = failed

	err := r.persist()
	if err != nil {
		r.log.Error().Err(err).Msg("Failed persisting relayer state")
	}
}

func (r *Relayer) processBlock(ctx context.Context, number *big.Int) error {
	block, err := r.l1.BlockByNumber(ctx, number)
	if err != nil {
		return err
	}

	for _, tx := range block.Transactions() {
		if tx.To() == nil || *tx.To() != r.cfg.Teleporter {
			continue
		}

		info, err := bridger.ParseRelayerInfoFromTx(tx.To(), tx.Data())
		if errors.Is(err, bridger.ErrNotRelayedTeleport) {
			continue
		}
		if err != nil {
			r.log.Warn().Err(err).Msgf("Skipping malformed teleport %s", tx.Hash().Hex())
			continue
		}

		if info.ChainID.Cmp(new(big.Int).SetUint64(r.cfg.L2ChainID)) != 0 {
			r.log.Debug().Msgf("Skipping deposit %s to chain %s", tx.Hash().Hex(), info.ChainID)
			continue
		}
		if info.RelayerPayment.Cmp(r.cfg.MinRelayerPayment) < 0 {
			r.log.Info().Msgf("Skipping deposit %s with relayer payment %s", tx.Hash().Hex(), info.RelayerPayment)
			continue
		}
		if _, ok := r.state.Deposits[tx.Hash()]; ok {
			continue
		}

		r.log.Info().Msgf("Found relayed deposit %s in block %s", tx.Hash().Hex(), number)
		r.metrics.TrackDiscoveredDeposit(tx.Hash())
		r.state.Deposits[tx.Hash()] = &PendingDeposit{Info: info}
	}
	return nil
}

// ProcessPending relays every discovered deposit that is ready and forgets the
// ones whose forwarder was called or that can no longer be relayed
func (r *Relayer) ProcessPending(ctx context.Context) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for hash, deposit := range r.state.Deposits {
		done, err := r.processDeposit(ctx, hash, deposit)
		if err != nil {
			r.log.Warn().Err(err).Msgf("Failed processing deposit %s", hash.Hex())
			continue
		}
		if done {
			delete(r.state.Deposits, hash)
		}
	}

	err := r.persist()
	if err != nil {
		r.log.Error().Err(err).Msg("Failed persisting relayer state")
	}
}

// Pending returns the number of deposits whose forwarder was not yet called
func (r *Relayer) Pending() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.state.Deposits)
}

// Healthy fails once no block range was handled for longer than maxAge
func (r *Relayer) Healthy(maxAge time.Duration) error {
	last := time.Unix(r.lastPoll.Load(), 0)
	if time.Since(last) > maxAge {
		return fmt.Errorf("no l1 blocks handled since %s", last.UTC().Format(time.RFC3339))
	}
	return nil
}

func (r *Relayer) processDeposit(ctx context.Context, hash common.Hash, deposit *PendingDeposit) (bool, error) {
	receipt, err := r.l1.TransactionReceipt(ctx, hash)
	if err != nil {
		return false, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		r.log.Info().Msgf("Deposit %s reverted", hash.Hex())
		return true, nil
	}

	status, err := r.status.GetDepositStatus(ctx, receipt, r.l2, r.l3)
	if err != nil {
		return false, err
	}
	if status.L2ForwarderCall != nil {
		if deposit.RelayTx == nil {
			r.log.Debug().Msgf("Forwarder of deposit %s already called in %s", hash.Hex(), status.L2ForwarderCall.TxHash.Hex())
			return true, nil
		}

		r.log.Info().Str("tx", status.L2ForwarderCall.TxHash.Hex()).Msgf("Relayed deposit %s", hash.Hex())
		r.metrics.TrackRelayedDeposit(hash)
		r.sendJob(ctx, cache.Job{DepositTx: hash, Status: cache.Relayed, RelayTx: status.L2ForwarderCall.TxHash})
		return true, nil
	}

	if isFinal(status.BridgeToL2) || isFinal(status.RetryableL2ForwarderCall) {
		r.log.Warn().Msgf("Deposit %s can not be relayed, tokens %s, forwarder funding %s", hash.Hex(), status.BridgeToL2.Status, status.RetryableL2ForwarderCall.Status)
		if deposit.RelayTx != nil {
			r.sendJob(ctx, cache.Job{DepositTx: hash, Status: cache.Failed, RelayTx: *deposit.RelayTx, Error: "deposit can no longer be relayed"})
		}
		return true, nil
	}

	if deposit.RelayTx != nil {
		r.checkRelay(ctx, hash, deposit)
		return false, nil
	}

	if status.BridgeToL2.Status != retryable.Redeemed || status.RetryableL2ForwarderCall.Status != retryable.Redeemed {
		return false, nil
	}

	if !r.jobs.Reserve(hash) {
		return false, nil
	}

	tx, err := r.relayer.RelayDeposit(ctx, deposit.Info)
	if err != nil {
		r.metrics.TrackFailedRelay(hash)
		r.sendJob(ctx, cache.Job{DepositTx: hash, Status: cache.Failed, Error: err.Error()})
		return false, err
	}

	r.log.Info().Str("tx", tx.Hash().Hex()).Msgf("Sent forwarder call of deposit %s", hash.Hex())
	relayTx := tx.Hash()
	deposit.RelayTx = &relayTx
	deposit.SentAt = time.Now().Unix()
	r.sendJob(ctx, cache.Job{DepositTx: hash, Status: cache.Pending, RelayTx: relayTx})
	return false, nil
}

// checkRelay releases the deposit for another relay once the sent forwarder
// call reverted or was not observed within the relay timeout
func (r *Relayer) checkRelay(ctx context.Context, hash common.Hash, deposit *PendingDeposit) {
	var reason string
	receipt, err := r.l2.TransactionReceipt(ctx, *deposit.RelayTx)
	switch {
	case err == nil && receipt.Status != types.ReceiptStatusSuccessful:
		reason = fmt.Sprintf("forwarder call %s reverted", deposit.RelayTx.Hex())
	case time.Since(time.Unix(deposit.SentAt, 0)) > r.cfg.RelayTimeout:
		reason = fmt.Sprintf("forwarder call %s not observed after %s", deposit.RelayTx.Hex(), r.cfg.RelayTimeout)
	default:
		return
	}

	r.log.Warn().Msgf("Relay of deposit %s failed: %s", hash.Hex(), reason)
	r.metrics.TrackFailedRelay(hash)
	r.sendJob(ctx, cache.Job{DepositTx: hash, Status: cache.Failed, RelayTx: *deposit.RelayTx, Error: reason})
	deposit.RelayTx = nil
	deposit.SentAt = 0
}

func (r *Relayer) sendJob(ctx context.Context, job cache.Job) {
	select {
	case r.jobChn <- job:
	case <-ctx.Done():
	}
}

func (r *Relayer) persist() error {
	return r.store.StoreState(r.cfg.ChainID, r.state)
}

// isFinal reports whether the ticket can no longer be redeemed
func isFinal(state *retryable.TicketState) bool {
	return state.Status == retryable.CreationFailed || state.Status == retryable.Expired
}

// ForwarderRelayer relays deposits with a single l2 signer
type ForwarderRelayer struct {
	registry *network.Registry
	signer   bridger.Signer
}

func NewForwarderRelayer(registry *network.Registry, signer bridger.Signer) *ForwarderRelayer {
	return &ForwarderRelayer{
		registry: registry,
		signer:   signer,
	}
}

func (r *ForwarderRelayer) RelayDeposit(ctx context.Context, info *bridger.RelayerInfo) (*types.Transaction, error) {
	return bridger.RelayDeposit(ctx, r.registry, info, r.signer)
}
