// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/network"
)

// RelayerInfo is everything a relayer needs to call the forwarder of a relayed teleport
type RelayerInfo struct {
	Owner          common.Address `json:"owner"`
	Token          common.Address `json:"token"`
	Router         common.Address `json:"router"`
	To             common.Address `json:"to"`
	GasLimit       *big.Int       `json:"gasLimit"`
	GasPrice       *big.Int       `json:"gasPrice"`
	RelayerPayment *big.Int       `json:"relayerPayment"`
	ChainID        *big.Int       `json:"chainId"`
}

func (i *RelayerInfo) forwarderParams() contracts.L2ForwarderParams {
	return contracts.L2ForwarderParams{
		Owner:          i.Owner,
		L2Token:        i.Token,
		RouterOrInbox:  i.Router,
		To:             i.To,
		GasLimit:       i.GasLimit,
		GasPriceBid:    i.GasPrice,
		RelayerPayment: i.RelayerPayment,
	}
}

func relayerInfo(p contracts.L2ForwarderParams, l2ChainID *big.Int) *RelayerInfo {
	return &RelayerInfo{
		Owner:          p.Owner,
		Token:          p.L2Token,
		Router:         p.RouterOrInbox,
		To:             p.To,
		GasLimit:       p.GasLimit,
		GasPrice:       p.GasPriceBid,
		RelayerPayment: p.RelayerPayment,
		ChainID:        l2ChainID,
	}
}

type RelayedDepositResult struct {
	Tx          *types.Transaction
	RelayerInfo *RelayerInfo
}

// RelayedErc20Bridger teleports tokens whose forwarder call is left to a paid relayer
type RelayedErc20Bridger struct {
	*Erc20Bridger
}

func NewRelayedErc20Bridger(triple network.ChainTriple, watcher TicketWatcher) (*RelayedErc20Bridger, error) {
	b, err := newErc20Bridger(triple, watcher, relayed)
	if err != nil {
		return nil, err
	}
	return &RelayedErc20Bridger{Erc20Bridger: b}, nil
}

// Deposit sends the relayed teleport and returns the info the relayer needs
func (b *RelayedErc20Bridger) Deposit(ctx context.Context, req *Erc20DepositRequest, l1Signer Signer) (*RelayedDepositResult, error) {
	if req == nil || req.RelayerInfo == nil {
		return nil, fmt.Errorf("missing relayed deposit request")
	}

	tx, err := b.Erc20Bridger.Deposit(ctx, req, l1Signer)
	if err != nil {
		return nil, err
	}
	return &RelayedDepositResult{
		Tx:          tx,
		RelayerInfo: req.RelayerInfo,
	}, nil
}

// ParseRelayerInfoFromTx decodes the relayer info of a relayed teleport from its l1 calldata
func ParseRelayerInfoFromTx(to *common.Address, data []byte) (*RelayerInfo, error) {
	if to == nil {
		return nil, fmt.Errorf("%w: contract creation", ErrNotRelayedTeleport)
	}

	method := consts.TeleporterABI.Methods["relayedTeleport"]
	if len(data) < 4 || !bytes.Equal(data[:4], method.ID) {
		return nil, ErrNotRelayedTeleport
	}

	input, err := contracts.NewTeleporterContract(*to).DecodeRelayedTeleport(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRelayedTeleport, err)
	}
	return relayerInfo(input.ForwarderParams, input.L2ChainId), nil
}

// RelayDeposit calls the forwarder factory on l2 with the relayer info. The
// factory deploys the forwarder when it is missing.
func RelayDeposit(ctx context.Context, registry *network.Registry, info *RelayerInfo, l2Signer Signer) (*types.Transaction, error) {
	if info == nil || info.ChainID == nil || !info.ChainID.IsUint64() {
		return nil, fmt.Errorf("invalid relayer info")
	}
	chainID := info.ChainID.Uint64()

	err := network.CheckChains(ctx, network.RoleCheck{Role: network.L2, Endpoint: l2Signer, Expected: chainID})
	if err != nil {
		return nil, err
	}

	teleporter, err := registry.Teleporter(chainID)
	if err != nil {
		return nil, err
	}

	factory := contracts.NewForwarderFactoryContract(teleporter.L2ForwarderFactory)
	data, err := factory.CallForwarderCalldata(info.forwarderParams())
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Relaying forwarder call of %s for %s on %d", info.Token.Hex(), info.To.Hex(), chainID)
	return l2Signer.Transact(ctx, teleporter.L2ForwarderFactory, data, big.NewInt(0))
}
