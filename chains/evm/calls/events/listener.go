// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
)

type EventFilterer interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethTypes.Log, error)
}

type Listener struct {
	client EventFilterer
}

func NewListener(client EventFilterer) *Listener {
	return &Listener{
		client: client,
	}
}

// FetchRedeemScheduled returns every redeem attempt scheduled for the ticket
// from the given block onwards
func (l *Listener) FetchRedeemScheduled(ctx context.Context, ticketID common.Hash, startBlock *big.Int) ([]*RedeemScheduled, error) {
	logs, err := l.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: startBlock,
		Addresses: []common.Address{consts.ArbRetryableTxAddress},
		Topics: [][]common.Hash{
			{RedeemScheduledSig.GetTopic()},
			{ticketID},
		},
	})
	if err != nil {
		return nil, err
	}

	redeems := make([]*RedeemScheduled, 0, len(logs))
	for _, log := range logs {
		r, err := UnpackRedeemScheduled(log)
		if err != nil {
			return nil, err
		}
		redeems = append(redeems, r)
	}
	return redeems, nil
}

// FetchForwarderCalls returns logs of forwarder factory calls that targeted the given forwarder
func (l *Listener) FetchForwarderCalls(ctx context.Context, factory common.Address, forwarder common.Address, startBlock *big.Int) ([]ethTypes.Log, error) {
	return l.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: startBlock,
		Addresses: []common.Address{factory},
		Topics: [][]common.Hash{
			{CalledL2ForwarderSig.GetTopic()},
			{common.BytesToHash(forwarder.Bytes())},
		},
	})
}

func UnpackMessageDelivered(l ethTypes.Log) (*MessageDelivered, error) {
	if len(l.Topics) != 3 || l.Topics[0] != MessageDeliveredSig.GetTopic() {
		return nil, fmt.Errorf("log %d is not a MessageDelivered event", l.Index)
	}

	var md MessageDelivered
	err := unpack(consts.BridgeABI, "MessageDelivered", l, &md)
	if err != nil {
		return nil, err
	}
	return &md, nil
}

func UnpackInboxMessageDelivered(l ethTypes.Log) (*InboxMessageDelivered, error) {
	if len(l.Topics) != 2 || l.Topics[0] != InboxMessageDeliveredSig.GetTopic() {
		return nil, fmt.Errorf("log %d is not an InboxMessageDelivered event", l.Index)
	}

	var imd InboxMessageDelivered
	err := unpack(consts.InboxABI, "InboxMessageDelivered", l, &imd)
	if err != nil {
		return nil, err
	}
	return &imd, nil
}

func UnpackRedeemScheduled(l ethTypes.Log) (*RedeemScheduled, error) {
	if len(l.Topics) != 4 || l.Topics[0] != RedeemScheduledSig.GetTopic() {
		return nil, fmt.Errorf("log %d is not a RedeemScheduled event", l.Index)
	}

	var rs RedeemScheduled
	err := unpack(consts.ArbRetryableTxABI, "RedeemScheduled", l, &rs)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func unpack(contractABI abi.ABI, event string, l ethTypes.Log, out interface{}) error {
	err := contractABI.UnpackIntoInterface(out, event, l.Data)
	if err != nil {
		return err
	}

	var indexed abi.Arguments
	for _, arg := range contractABI.Events[event].Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return abi.ParseTopics(out, indexed, l.Topics[1:])
}
