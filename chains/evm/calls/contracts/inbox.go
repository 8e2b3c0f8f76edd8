// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
)

type CreateRetryableTicketInput struct {
	To                     common.Address `abi:"to"`
	L2CallValue            *big.Int       `abi:"l2CallValue"`
	MaxSubmissionCost      *big.Int       `abi:"maxSubmissionCost"`
	ExcessFeeRefundAddress common.Address `abi:"excessFeeRefundAddress"`
	CallValueRefundAddress common.Address `abi:"callValueRefundAddress"`
	GasLimit               *big.Int       `abi:"gasLimit"`
	MaxFeePerGas           *big.Int       `abi:"maxFeePerGas"`
	Data                   []byte         `abi:"data"`
}

type InboxContract struct {
	Contract
}

func NewInboxContract(address common.Address) *InboxContract {
	return &InboxContract{
		Contract: NewContract(address, consts.InboxABI, nil),
	}
}

func (c *InboxContract) CreateRetryableTicketCalldata(input CreateRetryableTicketInput) ([]byte, error) {
	return c.PackMethod(
		"createRetryableTicket",
		input.To,
		input.L2CallValue,
		input.MaxSubmissionCost,
		input.ExcessFeeRefundAddress,
		input.CallValueRefundAddress,
		input.GasLimit,
		input.MaxFeePerGas,
		input.Data,
	)
}

func (c *InboxContract) DecodeCreateRetryableTicket(calldata []byte) (*CreateRetryableTicketInput, error) {
	res, err := c.UnpackMethodInput("createRetryableTicket", calldata)
	if err != nil {
		return nil, err
	}

	var input CreateRetryableTicketInput
	err = c.ABI.Methods["createRetryableTicket"].Inputs.Copy(&input, res)
	if err != nil {
		return nil, err
	}
	return &input, nil
}

type ArbRetryableTxContract struct {
	Contract
}

func NewArbRetryableTxContract(caller ContractCaller) *ArbRetryableTxContract {
	return &ArbRetryableTxContract{
		Contract: NewContract(consts.ArbRetryableTxAddress, consts.ArbRetryableTxABI, caller),
	}
}

// Timeout returns the expiry timestamp of a live ticket. The call reverts
// for tickets that were redeemed, expired or never created.
func (c *ArbRetryableTxContract) Timeout(ctx context.Context, ticketID common.Hash) (*big.Int, error) {
	res, err := c.CallContract(ctx, "getTimeout", ticketID)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
