// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

// ChainClient is the read access a bridger needs to a single chain
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, callArgs map[string]interface{}, blockNumber *big.Int) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

type Signer interface {
	ChainID(ctx context.Context) (*big.Int, error)
	From() common.Address
	Transact(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Transaction, error)
}

type TicketWatcher interface {
	Status(ctx context.Context, client retryable.ChildClient, ticket *retryable.Ticket) (*retryable.TicketState, error)
}

// TxRequest is an unsigned transaction planned by a bridger
type TxRequest struct {
	To    common.Address `json:"to"`
	Data  []byte         `json:"data"`
	Value *big.Int       `json:"value"`
}

// route is the configuration shared by all bridgers
type route struct {
	triple  network.ChainTriple
	l2      network.Network
	l3      network.Network
	watcher TicketWatcher
}

func newRoute(triple network.ChainTriple, watcher TicketWatcher) route {
	return route{
		triple:  triple,
		l2:      triple.L2(),
		l3:      triple.L3(),
		watcher: watcher,
	}
}

func (r route) Triple() network.ChainTriple {
	return r.triple
}

func (r route) checkChains(ctx context.Context, l1 network.ChainIDReader, l2 network.ChainIDReader, l3 network.ChainIDReader) error {
	return network.CheckChains(
		ctx,
		network.RoleCheck{Role: network.L1, Endpoint: l1, Expected: r.triple.L1ChainID()},
		network.RoleCheck{Role: network.L2, Endpoint: l2, Expected: r.triple.L2ChainID()},
		network.RoleCheck{Role: network.L3, Endpoint: l3, Expected: r.triple.L3ChainID()},
	)
}

func (r route) transact(ctx context.Context, signer Signer, role network.Role, expected uint64, req TxRequest) (*types.Transaction, error) {
	err := network.CheckChains(ctx, network.RoleCheck{Role: role, Endpoint: signer, Expected: expected})
	if err != nil {
		return nil, err
	}

	value := req.Value
	if value == nil {
		value = big.NewInt(0)
	}
	return signer.Transact(ctx, req.To, req.Data, value)
}
