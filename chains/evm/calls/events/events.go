// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	MessageDeliveredSig      EventSig = "MessageDelivered(uint256,bytes32,address,uint8,address,bytes32,uint256,uint64)"
	InboxMessageDeliveredSig EventSig = "InboxMessageDelivered(uint256,bytes)"
	RedeemScheduledSig       EventSig = "RedeemScheduled(bytes32,bytes32,uint64,uint64,address,uint256,uint256)"
	CalledL2ForwarderSig     EventSig = "CalledL2Forwarder(address,(address,address,address,address,uint256,uint256,uint256))"
)

// SubmitRetryableKind is the bridge message kind of a retryable ticket submission
const SubmitRetryableKind uint8 = 9

// MessageDelivered is emitted by the bridge of a child chain for every message
// enqueued into its delayed inbox
type MessageDelivered struct {
	MessageIndex    *big.Int
	BeforeInboxAcc  common.Hash
	Inbox           common.Address
	Kind            uint8
	Sender          common.Address
	MessageDataHash [32]byte
	BaseFeeL1       *big.Int
	Timestamp       uint64
}

// InboxMessageDelivered carries the raw payload of a delayed inbox message
type InboxMessageDelivered struct {
	MessageNum *big.Int
	Data       []byte
}

// RedeemScheduled is emitted by ArbRetryableTx whenever a redeem attempt
// of a ticket is scheduled, either automatically or manually
type RedeemScheduled struct {
	TicketId            common.Hash
	RetryTxHash         common.Hash
	SequenceNum         uint64
	DonatedGas          uint64
	GasDonor            common.Address
	MaxRefund           *big.Int
	SubmissionFeeRefund *big.Int
}
