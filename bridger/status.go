// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/events"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

// Erc20DepositStatus is the progress of a token teleport across all of its hops
type Erc20DepositStatus struct {
	BridgeToL2 *retryable.TicketState `json:"bridgeToL2"`
	// BridgeGasTokenToL2 is nil when the teleport did not bridge the l3 fee token
	BridgeGasTokenToL2       *retryable.TicketState `json:"bridgeGasTokenToL2,omitempty"`
	RetryableL2ForwarderCall *retryable.TicketState `json:"retryableL2ForwarderCall"`
	// L2ForwarderCall is the l2 receipt of the forwarder call, whoever made it
	L2ForwarderCall *types.Receipt         `json:"l2ForwarderCall,omitempty"`
	BridgeToL3      *retryable.TicketState `json:"bridgeToL3"`
	Completed       bool                   `json:"completed"`
}

// teleportTickets are the l1 to l2 tickets of a single teleport
type teleportTickets struct {
	feeToken  *retryable.Ticket
	token     *retryable.Ticket
	last      *retryable.Ticket
	forwarder common.Address
}

// GetDepositStatus reads the state of every hop of the teleport sent in the l1 receipt
func (b *Erc20Bridger) GetDepositStatus(ctx context.Context, receipt *types.Receipt, l2 ChainClient, l3 ChainClient) (*Erc20DepositStatus, error) {
	err := b.checkChains(ctx, nil, l2, l3)
	if err != nil {
		return nil, err
	}

	tickets, err := b.teleportTickets(receipt)
	if err != nil {
		return nil, err
	}

	status := &Erc20DepositStatus{}
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		status.BridgeToL2, err = b.watcher.Status(ctx, l2, tickets.token)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		status.RetryableL2ForwarderCall, err = b.watcher.Status(ctx, l2, tickets.last)
		return err
	})
	if tickets.feeToken != nil {
		p.Go(func(ctx context.Context) error {
			var err error
			status.BridgeGasTokenToL2, err = b.watcher.Status(ctx, l2, tickets.feeToken)
			return err
		})
	}
	err = p.Wait()
	if err != nil {
		return nil, err
	}

	status.L2ForwarderCall, err = b.forwarderCall(ctx, l2, tickets, status)
	if err != nil {
		return nil, err
	}

	status.BridgeToL3 = retryable.NotCreatedState(nil)
	if status.L2ForwarderCall != nil {
		l3Tickets, err := retryable.ParseTickets(status.L2ForwarderCall, b.l3)
		if err != nil {
			return nil, err
		}
		if len(l3Tickets) > 0 {
			status.BridgeToL3, err = b.watcher.Status(ctx, l3, l3Tickets[len(l3Tickets)-1])
			if err != nil {
				return nil, err
			}
		}
	}

	status.Completed = status.BridgeToL3.Status == retryable.Redeemed
	return status, nil
}

// teleportTickets splits the l1 receipt tickets by purpose and resolves the
// forwarder the tokens were bridged to
func (b *Erc20Bridger) teleportTickets(receipt *types.Receipt) (*teleportTickets, error) {
	tickets, err := retryable.ParseTickets(receipt, b.l2)
	if err != nil {
		return nil, err
	}
	if len(tickets) != 2 && len(tickets) != 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 tickets in %s, found %d", ErrNotTeleport, receipt.TxHash.Hex(), len(tickets))
	}

	t := &teleportTickets{
		token: tickets[len(tickets)-2],
		last:  tickets[len(tickets)-1],
	}
	if len(tickets) == 3 {
		t.feeToken = tickets[0]
	}

	transfer, err := b.gateway.DecodeFinalizeInboundTransfer(t.token.Submission.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: token ticket of %s: %s", ErrNotTeleport, receipt.TxHash.Hex(), err)
	}
	t.forwarder = transfer.To

	expected, err := b.lastTicketForwarder(t.last)
	if err != nil {
		return nil, err
	}
	if expected != t.forwarder {
		return nil, fmt.Errorf("%w: tokens of %s were bridged to %s instead of forwarder %s", ErrNotTeleport, receipt.TxHash.Hex(), t.forwarder.Hex(), expected.Hex())
	}
	return t, nil
}

// lastTicketForwarder returns the forwarder the last ticket calls or funds
func (b *Erc20Bridger) lastTicketForwarder(ticket *retryable.Ticket) (common.Address, error) {
	dest := ticket.Submission.DestAddress
	if dest != b.teleporter.L2ForwarderFactory {
		// relayed teleports fund the forwarder with a plain transfer
		return dest, nil
	}

	params, err := b.factory.DecodeCallForwarder(ticket.Submission.Data)
	if err != nil {
		return common.Address{}, err
	}
	return b.calculator.Address(forwarderParamsKey(*params)), nil
}

// forwarderCall finds the l2 transaction that called the forwarder. The
// forwarder can be called by anyone once it holds the tokens, so the factory
// logs are searched when the last ticket did not make the call.
func (b *Erc20Bridger) forwarderCall(ctx context.Context, l2 ChainClient, tickets *teleportTickets, status *Erc20DepositStatus) (*types.Receipt, error) {
	last := status.RetryableL2ForwarderCall
	if last.Status == retryable.Redeemed && b.calledForwarder(last.RedeemReceipt, tickets.forwarder) {
		return last.RedeemReceipt, nil
	}

	token := status.BridgeToL2
	if token.Status == retryable.NotYetCreated || token.CreationReceipt == nil {
		return nil, nil
	}

	logs, err := events.NewListener(l2).FetchForwarderCalls(ctx, b.teleporter.L2ForwarderFactory, tickets.forwarder, token.CreationReceipt.BlockNumber)
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		receipt, err := l2.TransactionReceipt(ctx, l.TxHash)
		if err != nil {
			return nil, err
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			continue
		}

		l3Tickets, err := retryable.ParseTickets(receipt, b.l3)
		if err != nil {
			return nil, err
		}
		if len(l3Tickets) == 0 {
			continue
		}

		log.Debug().Msgf("Forwarder %s was called in %s", tickets.forwarder.Hex(), receipt.TxHash.Hex())
		return receipt, nil
	}
	return nil, nil
}

func (b *Erc20Bridger) calledForwarder(receipt *types.Receipt, forwarder common.Address) bool {
	if receipt == nil {
		return false
	}

	for _, l := range receipt.Logs {
		if l.Address != b.teleporter.L2ForwarderFactory || len(l.Topics) == 0 || l.Topics[0] != events.CalledL2ForwarderSig.GetTopic() {
			continue
		}
		called, _, err := b.factory.UnpackCalledL2Forwarder(l.Data, l.Topics)
		if err != nil {
			continue
		}
		if called == forwarder {
			return true
		}
	}
	return false
}
