// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

type EthOverrides struct {
	L2GasLimit *uint64
	L3GasLimit *uint64
	L2GasPrice *GasPriceOverride
	L3GasPrice *GasPriceOverride
	// submission costs are estimated when nil
	L2SubmissionCost             *big.Int
	L3SubmissionCost             *big.Int
	SubmissionFeePercentIncrease *big.Int
}

type EthDepositParams struct {
	Amount *big.Int
	// From receives l2 refunds
	From common.Address
	// To is the l3 recipient, defaults to From
	To        common.Address
	Overrides EthOverrides
}

type EthDepositRequest struct {
	TxRequest        TxRequest
	L2GasLimit       uint64
	L3GasLimit       uint64
	L2GasPrice       *big.Int
	L3GasPrice       *big.Int
	L2SubmissionCost *big.Int
	L3SubmissionCost *big.Int
}

type EthDepositStatus struct {
	BridgeToL2 *retryable.TicketState `json:"bridgeToL2"`
	BridgeToL3 *retryable.TicketState `json:"bridgeToL3"`
	Completed  bool                   `json:"completed"`
}

// EthDepositMessages are the tickets of a coin teleport, L3 is nil until the
// l2 ticket is redeemed
type EthDepositMessages struct {
	L2 *retryable.Ticket
	L3 *retryable.Ticket
}

// EthBridger teleports the L1 coin to L3 with one l1 to l2 ticket that
// submits an l2 to l3 ticket on redemption
type EthBridger struct {
	route

	l2Inbox *contracts.InboxContract
	l3Inbox *contracts.InboxContract
}

func NewEthBridger(triple network.ChainTriple, watcher TicketWatcher) (*EthBridger, error) {
	r := newRoute(triple, watcher)
	if r.l3.UsesCustomFeeToken() {
		return nil, &ConstructionError{Reason: fmt.Sprintf("network %d pays fees in token %s", r.l3.ChainID, r.l3.NativeToken.Hex())}
	}

	return &EthBridger{
		route:   r,
		l2Inbox: contracts.NewInboxContract(r.l2.EthBridge.Inbox),
		l3Inbox: contracts.NewInboxContract(r.l3.EthBridge.Inbox),
	}, nil
}

// GetDepositRequest plans the l1 ticket whose l2 call submits the l3 ticket
func (b *EthBridger) GetDepositRequest(ctx context.Context, params EthDepositParams, l1 ChainClient, l2 ChainClient, l3 ChainClient) (*EthDepositRequest, error) {
	err := b.checkChains(ctx, l1, l2, l3)
	if err != nil {
		return nil, err
	}

	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("deposit amount has to be positive")
	}
	if params.From == (common.Address{}) {
		return nil, fmt.Errorf("deposit sender is required")
	}
	to := params.To
	if to == (common.Address{}) {
		to = params.From
	}

	o := params.Overrides
	req := &EthDepositRequest{
		L2GasLimit:       gasLimitOrDefault(o.L2GasLimit),
		L3GasLimit:       gasLimitOrDefault(o.L3GasLimit),
		L2SubmissionCost: o.L2SubmissionCost,
		L3SubmissionCost: o.L3SubmissionCost,
	}

	req.L2GasPrice, err = gasPrice(ctx, l2, o.L2GasPrice)
	if err != nil {
		return nil, err
	}
	req.L3GasPrice, err = gasPrice(ctx, l3, o.L3GasPrice)
	if err != nil {
		return nil, err
	}

	// the l3 ticket carries no data, refunds go to the l3 recipient
	l3Ticket := contracts.CreateRetryableTicketInput{
		To:                     to,
		L2CallValue:            params.Amount,
		ExcessFeeRefundAddress: to,
		CallValueRefundAddress: to,
		GasLimit:               new(big.Int).SetUint64(req.L3GasLimit),
		MaxFeePerGas:           req.L3GasPrice,
		Data:                   []byte{},
	}
	if req.L3SubmissionCost == nil {
		req.L3SubmissionCost, err = submissionCost(ctx, l2, 0, o.SubmissionFeePercentIncrease)
		if err != nil {
			return nil, err
		}
	}
	l3Ticket.MaxSubmissionCost = req.L3SubmissionCost

	l3Calldata, err := b.l3Inbox.CreateRetryableTicketCalldata(l3Ticket)
	if err != nil {
		return nil, err
	}

	if req.L2SubmissionCost == nil {
		req.L2SubmissionCost, err = submissionCost(ctx, l1, uint64(len(l3Calldata)), o.SubmissionFeePercentIncrease)
		if err != nil {
			return nil, err
		}
	}

	l2CallValue := new(big.Int).Add(params.Amount, req.L3SubmissionCost)
	l2CallValue.Add(l2CallValue, gasCost(req.L3GasLimit, req.L3GasPrice))

	refund := retryable.ApplyL1ToL2Alias(params.From)
	l2Calldata, err := b.l2Inbox.CreateRetryableTicketCalldata(contracts.CreateRetryableTicketInput{
		To:                     b.l3.EthBridge.Inbox,
		L2CallValue:            l2CallValue,
		MaxSubmissionCost:      req.L2SubmissionCost,
		ExcessFeeRefundAddress: refund,
		CallValueRefundAddress: refund,
		GasLimit:               new(big.Int).SetUint64(req.L2GasLimit),
		MaxFeePerGas:           req.L2GasPrice,
		Data:                   l3Calldata,
	})
	if err != nil {
		return nil, err
	}

	value := new(big.Int).Add(l2CallValue, req.L2SubmissionCost)
	value.Add(value, gasCost(req.L2GasLimit, req.L2GasPrice))
	req.TxRequest = TxRequest{
		To:    b.l2.EthBridge.Inbox,
		Data:  l2Calldata,
		Value: value,
	}

	log.Debug().Msgf("Planned coin teleport of %s to %s with value %s", params.Amount, to.Hex(), value)
	return req, nil
}

func (b *EthBridger) Deposit(ctx context.Context, req *EthDepositRequest, l1Signer Signer) (*types.Transaction, error) {
	if req == nil {
		return nil, fmt.Errorf("missing deposit request")
	}
	return b.transact(ctx, l1Signer, network.L1, b.triple.L1ChainID(), req.TxRequest)
}

// GetDepositMessages returns the tickets of the coin teleport sent in the l1 receipt
func (b *EthBridger) GetDepositMessages(ctx context.Context, receipt *types.Receipt, l2 ChainClient) (*EthDepositMessages, error) {
	err := b.checkChains(ctx, nil, l2, nil)
	if err != nil {
		return nil, err
	}

	messages, _, err := b.depositMessages(ctx, receipt, l2)
	return messages, err
}

func (b *EthBridger) GetDepositStatus(ctx context.Context, receipt *types.Receipt, l2 ChainClient, l3 ChainClient) (*EthDepositStatus, error) {
	err := b.checkChains(ctx, nil, l2, l3)
	if err != nil {
		return nil, err
	}

	messages, l2State, err := b.depositMessages(ctx, receipt, l2)
	if err != nil {
		return nil, err
	}

	status := &EthDepositStatus{
		BridgeToL2: l2State,
		BridgeToL3: retryable.NotCreatedState(nil),
	}
	if messages.L3 != nil {
		status.BridgeToL3, err = b.watcher.Status(ctx, l3, messages.L3)
		if err != nil {
			return nil, err
		}
	}

	status.Completed = status.BridgeToL3.Status == retryable.Redeemed
	return status, nil
}

func (b *EthBridger) depositMessages(ctx context.Context, receipt *types.Receipt, l2 ChainClient) (*EthDepositMessages, *retryable.TicketState, error) {
	tickets, err := retryable.ParseTickets(receipt, b.l2)
	if err != nil {
		return nil, nil, err
	}
	if len(tickets) != 1 {
		return nil, nil, fmt.Errorf("expected 1 ticket in coin teleport %s, found %d", receipt.TxHash.Hex(), len(tickets))
	}

	messages := &EthDepositMessages{L2: tickets[0]}
	state, err := b.watcher.Status(ctx, l2, messages.L2)
	if err != nil {
		return nil, nil, err
	}
	if state.Status != retryable.Redeemed {
		return messages, state, nil
	}

	l3Tickets, err := retryable.ParseTickets(state.RedeemReceipt, b.l3)
	if err != nil {
		return nil, nil, err
	}
	if len(l3Tickets) > 0 {
		messages.L3 = l3Tickets[0]
	}
	return messages, state, nil
}

func gasLimitOrDefault(limit *uint64) uint64 {
	if limit == nil {
		return DefaultGasLimit
	}
	return *limit
}
