// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retryable

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/events"
	"github.com/sprintertech/sprinter-teleport/network"
)

const submitRetryableTxType = 0x69

// Ticket is a retryable ticket submitted on a parent chain towards a child chain
type Ticket struct {
	ChildChainID  *big.Int       `json:"childChainId"`
	MessageNumber *big.Int       `json:"messageNumber"`
	Sender        common.Address `json:"sender"`
	BaseFee       *big.Int       `json:"baseFee"`
	Submission    *Submission    `json:"submission"`
	// ID is the hash of the child chain transaction that creates the ticket
	ID common.Hash `json:"id"`
}

// ParseTickets returns the retryable tickets the receipt submitted into the
// delayed inbox of the child chain, in submission order
func ParseTickets(receipt *types.Receipt, child network.Network) ([]*Ticket, error) {
	delivered := make([]*events.MessageDelivered, 0)
	payloads := make(map[string][]byte)
	for _, l := range receipt.Logs {
		if len(l.Topics) == 0 {
			continue
		}

		switch {
		case l.Address == child.EthBridge.Bridge && l.Topics[0] == events.MessageDeliveredSig.GetTopic():
			{
				md, err := events.UnpackMessageDelivered(*l)
				if err != nil {
					return nil, err
				}
				if md.Kind != events.SubmitRetryableKind || md.Inbox != child.EthBridge.Inbox {
					continue
				}
				delivered = append(delivered, md)
			}
		case l.Address == child.EthBridge.Inbox && l.Topics[0] == events.InboxMessageDeliveredSig.GetTopic():
			{
				imd, err := events.UnpackInboxMessageDelivered(*l)
				if err != nil {
					return nil, err
				}
				payloads[imd.MessageNum.String()] = imd.Data
			}
		}
	}

	chainID := new(big.Int).SetUint64(child.ChainID)
	tickets := make([]*Ticket, 0, len(delivered))
	for _, md := range delivered {
		payload, ok := payloads[md.MessageIndex.String()]
		if !ok {
			return nil, fmt.Errorf("missing inbox payload of message %s", md.MessageIndex)
		}

		submission, err := DecodeSubmission(payload)
		if err != nil {
			return nil, err
		}

		t := &Ticket{
			ChildChainID:  chainID,
			MessageNumber: md.MessageIndex,
			Sender:        md.Sender,
			BaseFee:       md.BaseFeeL1,
			Submission:    submission,
		}
		t.ID, err = CalculateSubmitRetryableID(t)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

// CalculateSubmitRetryableID returns the hash of the child chain transaction
// that creates the ticket
func CalculateSubmitRetryableID(t *Ticket) (common.Hash, error) {
	s := t.Submission
	var dest interface{} = s.DestAddress
	if s.DestAddress == (common.Address{}) {
		dest = []byte{}
	}

	fields := []interface{}{
		t.ChildChainID,
		common.LeftPadBytes(t.MessageNumber.Bytes(), 32),
		t.Sender,
		t.BaseFee,
		s.L1Value,
		s.MaxFeePerGas,
		s.GasLimit,
		dest,
		s.L2CallValue,
		s.CallValueRefundAddress,
		s.MaxSubmissionFee,
		s.ExcessFeeRefundAddress,
		s.Data,
	}

	encoded, err := rlp.EncodeToBytes(fields)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash([]byte{submitRetryableTxType}, encoded), nil
}
