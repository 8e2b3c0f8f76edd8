// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retryable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/events"
)

type TicketStatus int

const (
	NotYetCreated TicketStatus = iota
	CreationFailed
	FundsDepositedOnL2
	Redeemed
	Expired
)

var statusNames = map[TicketStatus]string{
	NotYetCreated:      "NOT_YET_CREATED",
	CreationFailed:     "CREATION_FAILED",
	FundsDepositedOnL2: "FUNDS_DEPOSITED_ON_L2",
	Redeemed:           "REDEEMED",
	Expired:            "EXPIRED",
}

func (s TicketStatus) String() string {
	name, ok := statusNames[s]
	if !ok {
		return fmt.Sprintf("TicketStatus(%d)", int(s))
	}
	return name
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, n := range statusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown ticket status %s", name)
}

// TicketState is a point in time observation of a ticket on its child chain
type TicketState struct {
	Ticket          *Ticket        `json:"ticket,omitempty"`
	Status          TicketStatus   `json:"status"`
	CreationReceipt *types.Receipt `json:"creationReceipt,omitempty"`
	RedeemReceipt   *types.Receipt `json:"redeemReceipt,omitempty"`
}

func NotCreatedState(ticket *Ticket) *TicketState {
	return &TicketState{
		Ticket: ticket,
		Status: NotYetCreated,
	}
}

type ChildClient interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, callArgs map[string]interface{}, blockNumber *big.Int) ([]byte, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Watcher reads the lifecycle of tickets from their child chain. It holds no
// state and every call is a fresh observation.
type Watcher struct{}

func NewWatcher() *Watcher {
	return &Watcher{}
}

// Status resolves the current status of the ticket. Redemptions by any party
// are detected through the RedeemScheduled logs of the ticket.
func (w *Watcher) Status(ctx context.Context, client ChildClient, ticket *Ticket) (*TicketState, error) {
	state := NotCreatedState(ticket)

	creation, err := receipt(ctx, client, ticket.ID)
	if err != nil {
		return nil, err
	}
	if creation == nil {
		return state, nil
	}
	state.CreationReceipt = creation
	if creation.Status != types.ReceiptStatusSuccessful {
		state.Status = CreationFailed
		return state, nil
	}

	for _, l := range creation.Logs {
		if l.Address != consts.ArbRetryableTxAddress || len(l.Topics) != 4 || l.Topics[0] != events.RedeemScheduledSig.GetTopic() {
			continue
		}
		if l.Topics[1] != ticket.ID {
			continue
		}

		redeem, err := successfulReceipt(ctx, client, l.Topics[2])
		if err != nil {
			return nil, err
		}
		if redeem != nil {
			state.Status = Redeemed
			state.RedeemReceipt = redeem
			return state, nil
		}
	}

	_, err = contracts.NewArbRetryableTxContract(client).Timeout(ctx, ticket.ID)
	if err == nil {
		state.Status = FundsDepositedOnL2
		return state, nil
	}
	if !isRevert(err) {
		return nil, err
	}

	// the ticket is gone, it was either redeemed manually or it expired
	redeems, err := events.NewListener(client).FetchRedeemScheduled(ctx, ticket.ID, creation.BlockNumber)
	if err != nil {
		return nil, err
	}
	for _, r := range redeems {
		redeem, err := successfulReceipt(ctx, client, r.RetryTxHash)
		if err != nil {
			return nil, err
		}
		if redeem != nil {
			state.Status = Redeemed
			state.RedeemReceipt = redeem
			return state, nil
		}
	}

	log.Debug().Msgf("Ticket %s has no successful redeem and is no longer live", ticket.ID.Hex())
	state.Status = Expired
	return state, nil
}

func receipt(ctx context.Context, client ChildClient, hash common.Hash) (*types.Receipt, error) {
	r, err := client.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func successfulReceipt(ctx context.Context, client ChildClient, hash common.Hash) (*types.Receipt, error) {
	r, err := receipt(ctx, client, hash)
	if err != nil || r == nil {
		return nil, err
	}
	if r.Status != types.ReceiptStatusSuccessful {
		return nil, nil
	}
	return r, nil
}

func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}
