// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package retryabletest builds the parent chain logs of ticket submissions
// for tests that parse receipts.
package retryabletest

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/events"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

// Message is a single delayed inbox message of a child chain
type Message struct {
	Number     *big.Int
	Sender     common.Address
	BaseFee    *big.Int
	Kind       uint8
	Submission *retryable.Submission
}

// Logs returns the bridge and inbox logs the parent chain emits when the message is delivered
func Logs(child network.Network, m Message) ([]*types.Log, error) {
	payload, err := m.Submission.Encode()
	if err != nil {
		return nil, err
	}

	kind := m.Kind
	if kind == 0 {
		kind = events.SubmitRetryableKind
	}
	delivered, err := consts.BridgeABI.Events["MessageDelivered"].Inputs.NonIndexed().Pack(
		child.EthBridge.Inbox,
		kind,
		m.Sender,
		crypto.Keccak256Hash(payload),
		m.BaseFee,
		uint64(1700000000),
	)
	if err != nil {
		return nil, err
	}

	inboxData, err := consts.InboxABI.Events["InboxMessageDelivered"].Inputs.NonIndexed().Pack(payload)
	if err != nil {
		return nil, err
	}

	number := common.BigToHash(m.Number)
	return []*types.Log{
		{
			Address: child.EthBridge.Bridge,
			Topics:  []common.Hash{events.MessageDeliveredSig.GetTopic(), number, {}},
			Data:    delivered,
		},
		{
			Address: child.EthBridge.Inbox,
			Topics:  []common.Hash{events.InboxMessageDeliveredSig.GetTopic(), number},
			Data:    inboxData,
		},
	}, nil
}

// Receipt wraps the logs of all messages into a successful receipt
func Receipt(child network.Network, messages ...Message) (*types.Receipt, error) {
	receipt := &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      common.HexToHash("0x01"),
		BlockNumber: big.NewInt(100),
	}
	for _, m := range messages {
		logs, err := Logs(child, m)
		if err != nil {
			return nil, err
		}
		receipt.Logs = append(receipt.Logs, logs...)
	}
	return receipt, nil
}

// RedeemScheduledLog is the child chain log of a redeem attempt of the ticket
func RedeemScheduledLog(ticketID common.Hash, retryTxHash common.Hash) (*types.Log, error) {
	data, err := consts.ArbRetryableTxABI.Events["RedeemScheduled"].Inputs.NonIndexed().Pack(
		uint64(100000),
		common.Address{},
		big.NewInt(0),
		big.NewInt(0),
	)
	if err != nil {
		return nil, err
	}

	return &types.Log{
		Address: consts.ArbRetryableTxAddress,
		Topics: []common.Hash{
			events.RedeemScheduledSig.GetTopic(),
			ticketID,
			retryTxHash,
			common.BigToHash(big.NewInt(0)),
		},
		Data: data,
	}, nil
}
